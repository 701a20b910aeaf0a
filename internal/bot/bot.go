package bot

import (
	"fmt"
	"school-timetable-bot/internal/models/config"
	"school-timetable-bot/internal/service"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// messageSender - часть BotAPI, через которую уходят ответы
type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Services struct {
	Classes   service.SchoolClassService
	Pupils    service.PupilService
	Teachers  service.TeacherService
	Subjects  service.SubjectService
	Timetable service.TimetableService
}

type Bot struct {
	client *tgbotapi.BotAPI
	api    messageSender

	ClassService     service.SchoolClassService
	PupilService     service.PupilService
	TeacherService   service.TeacherService
	SubjectService   service.SubjectService
	TimetableService service.TimetableService

	cfg      config.BotConfig
	location *time.Location
	now      func() time.Time
	logger   *zap.Logger

	userSessions map[int64]*UserSession // chatID -> session
	mu           sync.RWMutex
}

func NewBot(cfg config.BotConfig, school config.SchoolConfig, services Services, logger *zap.Logger) (*Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("BOT_TOKEN не установлен в конфигурации")
	}

	location, err := school.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid school timezone: %w", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	api.Debug = cfg.Debug

	logger = logger.Named("bot")
	logger.Info("🤖 Бот инициализирован",
		zap.String("username", api.Self.UserName),
		zap.Bool("debug", cfg.Debug),
		zap.Int64s("admins", cfg.AdminIDs),
		zap.String("timezone", location.String()),
	)

	return newBot(api, api, cfg, location, services, logger), nil
}

func newBot(client *tgbotapi.BotAPI, api messageSender, cfg config.BotConfig, location *time.Location, services Services, logger *zap.Logger) *Bot {
	b := &Bot{
		client:           client,
		api:              api,
		ClassService:     services.Classes,
		PupilService:     services.Pupils,
		TeacherService:   services.Teachers,
		SubjectService:   services.Subjects,
		TimetableService: services.Timetable,
		cfg:              cfg,
		location:         location,
		logger:           logger,
		userSessions:     make(map[int64]*UserSession),
	}
	b.now = func() time.Time { return time.Now().In(b.location) }
	return b
}

// Start читает обновления до вызова Stop
func (b *Bot) Start() error {
	b.logger.Info("авторизован", zap.String("username", b.client.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates, err := b.client.GetUpdatesChan(u)
	if err != nil {
		return err
	}

	for update := range updates {
		if update.Message == nil {
			continue
		}

		go b.handleMessage(update.Message)
	}

	return nil
}

func (b *Bot) Stop() {
	b.client.StopReceivingUpdates()
	b.logger.Info("🛑 бот остановлен")
}
