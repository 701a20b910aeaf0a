package main

import (
	"context"
	"fmt"
	"os"
	"school-timetable-bot/internal/bot"
	"school-timetable-bot/internal/models/config"
	"school-timetable-bot/internal/repository/pupil"
	"school-timetable-bot/internal/repository/school_class"
	"school-timetable-bot/internal/repository/subject"
	"school-timetable-bot/internal/repository/teacher"
	"school-timetable-bot/internal/repository/time_entry"
	"school-timetable-bot/internal/service"
	pupil_service "school-timetable-bot/internal/service/pupil"
	school_class_service "school-timetable-bot/internal/service/school_class"
	subject_service "school-timetable-bot/internal/service/subject"
	teacher_service "school-timetable-bot/internal/service/teacher"
	timetable_service "school-timetable-bot/internal/service/timetable"
	database "school-timetable-bot/pkg"
	"school-timetable-bot/pkg/logger"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const migrationTimeout = 30 * time.Second

func main() {
	// Загружаем конфигурацию
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	cfg := config.AppConfig

	fx.New(
		fx.Supply(cfg.Bot, cfg.School, cfg.Database),
		fx.Provide(
			func() (*zap.Logger, error) { return logger.New(cfg.Environment, cfg.Bot.Debug) },
			newDatabase,

			// Репозитории
			school_class.NewSchoolClassRepository,
			pupil.NewPupilRepository,
			teacher.NewTeacherRepository,
			subject.NewSubjectRepository,
			time_entry.NewTimeEntryRepository,

			// Сервисы
			school_class_service.NewSchoolClassService,
			pupil_service.NewPupilService,
			teacher_service.NewTeacherService,
			subject_service.NewSubjectService,
			timetable_service.NewTimetableService,
			newBotServices,

			bot.NewBot,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Invoke(runBot),
	).Run()
}

// newDatabase подключается к БД и применяет миграции
func newDatabase(lc fx.Lifecycle, cfg config.DatabaseConfig, log *zap.Logger) (*sqlx.DB, error) {
	db, err := database.NewPostgres(cfg, log)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	defer cancel()

	if err := database.RunMigrations(ctx, db, log); err != nil {
		db.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing database connection")
			return db.Close()
		},
	})
	return db, nil
}

func newBotServices(
	classes service.SchoolClassService,
	pupils service.PupilService,
	teachers service.TeacherService,
	subjects service.SubjectService,
	timetable service.TimetableService,
) bot.Services {
	return bot.Services{
		Classes:   classes,
		Pupils:    pupils,
		Teachers:  teachers,
		Subjects:  subjects,
		Timetable: timetable,
	}
}

func runBot(lc fx.Lifecycle, telegramBot *bot.Bot, shutdowner fx.Shutdowner, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("🚀 Запуск в окружении", zap.String("environment", config.AppConfig.Environment))

			// Запускаем бота в горутине
			go func() {
				if err := telegramBot.Start(); err != nil {
					log.Error("❌ Ошибка запуска бота", zap.Error(err))
					shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			telegramBot.Stop()
			log.Info("👋 Корректное завершение работы")
			log.Sync()
			return nil
		},
	})
}
