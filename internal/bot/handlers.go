package bot

import (
	"context"
	"fmt"
	"school-timetable-bot/internal/models"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"
)

const helpText = `📚 Команды:

/now <имя> - где сейчас ученик
/at <класс> <день> <ЧЧ:ММ> - что идёт у класса в это время
/day <класс> <день> - уроки класса на день
/sessions - расписание звонков
/classes - список классов
/pupils <класс> - ученики класса
/find <имя> - найти ученика
/subjects - список предметов
/cancel - отменить ввод

Дни: mon, tue, wed, thu, fri`

const adminHelpText = `

🛠 Администратор:
/teachers - учителя и их id
/add <день> <урок> <класс> <предмет> <id учителя> <группа> [ЧЧ:ММ-ЧЧ:ММ]
/move <id урока> <день> <урок> [ЧЧ:ММ-ЧЧ:ММ]
/del <id урока>
/addclass <класс>
/renameclass <класс> <новое имя>
/addteacher <имя> <фамилия>
/addpupil <класс> <имя> <фамилия> [1|2]

Группы: 1, 2, all
Предметы: math, physics, chemistry, biology, english, history, geography, it`

// Обработка сообщения здесь
func (b *Bot) handleMessage(message *tgbotapi.Message) {
	if message.From == nil || message.Chat == nil {
		return
	}

	chatID := message.Chat.ID
	userID := int64(message.From.ID)
	b.logger.Debug("message", zap.String("user", message.From.UserName), zap.String("text", message.Text))

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	// Состояние проверяем прежде команд
	if b.sessionState(chatID) == StateAwaitingPupilName && !message.IsCommand() {
		b.resetSession(chatID)
		if message.Text == btnCancel {
			b.cancelOperation(chatID, userID)
			return
		}
		b.handlePupilNow(ctx, chatID, userID, message.Text)
		return
	}

	if message.IsCommand() {
		b.resetSession(chatID)
		args := strings.TrimSpace(message.CommandArguments())

		switch message.Command() {
		case "start", "help":
			b.sendWelcomeMessage(chatID, userID)
		case "now":
			if args == "" {
				b.askPupilName(chatID)
				return
			}
			b.handlePupilNow(ctx, chatID, userID, args)
		case "at":
			b.handleClassAt(ctx, chatID, args)
		case "day":
			b.handleClassDay(ctx, chatID, args)
		case "sessions":
			b.sendMessage(chatID, formatSessions())
		case "classes":
			b.showClasses(ctx, chatID)
		case "pupils":
			b.showClassPupils(ctx, chatID, args)
		case "find":
			b.handleFindPupils(ctx, chatID, args)
		case "subjects":
			b.showSubjects(ctx, chatID)
		case "cancel":
			b.cancelOperation(chatID, userID)

		// Только для администраторов
		case "teachers", "add", "move", "del", "addclass", "renameclass", "addteacher", "addpupil":
			if !b.cfg.IsAdmin(userID) {
				b.sendError(chatID, "❌ Эта команда доступна только администраторам")
				return
			}
			b.handleAdminCommand(ctx, chatID, message.Command(), args)
		default:
			b.sendWelcomeMessage(chatID, userID)
		}
		return
	}

	switch message.Text {
	case btnWhereIsPupil:
		b.askPupilName(chatID)
	case btnBells:
		b.sendMessage(chatID, formatSessions())
	case btnClasses:
		b.showClasses(ctx, chatID)
	case btnTeachers:
		if !b.cfg.IsAdmin(userID) {
			b.sendError(chatID, "❌ Эта команда доступна только администраторам")
			return
		}
		b.showTeachers(ctx, chatID)
	case btnCancel:
		b.cancelOperation(chatID, userID)
	default:
		b.sendWelcomeMessage(chatID, userID)
	}
}

func (b *Bot) handleAdminCommand(ctx context.Context, chatID int64, command, args string) {
	switch command {
	case "teachers":
		b.showTeachers(ctx, chatID)
	case "add":
		b.handleAddEntry(ctx, chatID, args)
	case "move":
		b.handleMoveEntry(ctx, chatID, args)
	case "del":
		b.handleDeleteEntry(ctx, chatID, args)
	case "addclass":
		b.handleAddClass(ctx, chatID, args)
	case "renameclass":
		b.handleRenameClass(ctx, chatID, args)
	case "addteacher":
		b.handleAddTeacher(ctx, chatID, args)
	case "addpupil":
		b.handleAddPupil(ctx, chatID, args)
	}
}

func (b *Bot) sendWelcomeMessage(chatID, userID int64) {
	isAdmin := b.cfg.IsAdmin(userID)

	text := "🏫 Школьное расписание\n\n" + helpText
	if isAdmin {
		text += adminHelpText
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = createMainKeyboard(isAdmin)
	b.send(msg)
}

func (b *Bot) askPupilName(chatID int64) {
	b.setState(chatID, StateAwaitingPupilName)

	msg := tgbotapi.NewMessage(chatID, "✏️ Введите имя или фамилию ученика:")
	msg.ReplyMarkup = createCancelKeyboard()
	b.send(msg)
}

func (b *Bot) handlePupilNow(ctx context.Context, chatID, userID int64, query string) {
	report, err := b.TimetableService.PupilNow(ctx, query, b.now())
	if err != nil {
		b.logger.Error("pupil now failed", zap.String("query", query), zap.Error(err))
		b.sendError(chatID, errorText(err))
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatPupilNow(report))
	msg.ReplyMarkup = createMainKeyboard(b.cfg.IsAdmin(userID))
	b.send(msg)
}

func (b *Bot) findClass(ctx context.Context, chatID int64, name string) (*models.SchoolClass, bool) {
	class, err := b.ClassService.GetClassByName(ctx, name)
	if err != nil {
		if _, _, parseErr := models.ParseClassName(name); parseErr != nil {
			b.sendError(chatID, "❌ "+parseErr.Error())
			return nil, false
		}
		b.sendError(chatID, errorText(err))
		return nil, false
	}
	return class, true
}

func (b *Bot) handleClassAt(ctx context.Context, chatID int64, args string) {
	className, day, at, err := parseClassAt(args)
	if err != nil {
		b.sendError(chatID, "❌ "+err.Error())
		return
	}

	class, ok := b.findClass(ctx, chatID, className)
	if !ok {
		return
	}

	entries, err := b.TimetableService.ClassAt(ctx, class.ID, day, at)
	if err != nil {
		b.logger.Error("class at failed", zap.Int64("class_id", class.ID), zap.Error(err))
		b.sendError(chatID, errorText(err))
		return
	}
	b.sendMessage(chatID, formatClassAt(class.String(), day, at.Format(clockLayout), entries))
}

func (b *Bot) handleClassDay(ctx context.Context, chatID int64, args string) {
	className, day, err := parseClassDay(args)
	if err != nil {
		b.sendError(chatID, "❌ "+err.Error())
		return
	}

	class, ok := b.findClass(ctx, chatID, className)
	if !ok {
		return
	}

	entries, err := b.TimetableService.ClassDay(ctx, class.ID, day)
	if err != nil {
		b.logger.Error("class day failed", zap.Int64("class_id", class.ID), zap.Error(err))
		b.sendError(chatID, errorText(err))
		return
	}
	b.sendMessage(chatID, formatClassDay(class.String(), day, entries))
}

func (b *Bot) showClasses(ctx context.Context, chatID int64) {
	classes, err := b.ClassService.GetAllClasses(ctx)
	if err != nil {
		b.logger.Error("list classes failed", zap.Error(err))
		b.sendError(chatID, errorText(err))
		return
	}
	if len(classes) == 0 {
		b.sendMessage(chatID, "📝 Список классов пуст")
		return
	}

	names := make([]string, 0, len(classes))
	for _, class := range classes {
		names = append(names, class.String())
	}
	b.sendMessage(chatID, "🏫 Классы: "+strings.Join(names, ", "))
}

func (b *Bot) showClassPupils(ctx context.Context, chatID int64, args string) {
	if args == "" {
		b.sendError(chatID, "❌ использование: /pupils <класс>")
		return
	}

	class, ok := b.findClass(ctx, chatID, args)
	if !ok {
		return
	}

	pupils, err := b.PupilService.GetClassPupils(ctx, class.ID)
	if err != nil {
		b.logger.Error("list pupils failed", zap.Int64("class_id", class.ID), zap.Error(err))
		b.sendError(chatID, errorText(err))
		return
	}
	if len(pupils) == 0 {
		b.sendMessage(chatID, fmt.Sprintf("📝 В %s учеников нет", class.String()))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("👥 %s:\n\n", class.String()))
	for i, pupil := range pupils {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, pupil.FullName()))
		if pupil.Group != nil {
			sb.WriteString(" (" + pupil.Group.DisplayName() + ")")
		}
		sb.WriteString("\n")
	}
	b.sendMessage(chatID, sb.String())
}

func (b *Bot) showTeachers(ctx context.Context, chatID int64) {
	teachers, err := b.TeacherService.GetAllTeachers(ctx)
	if err != nil {
		b.logger.Error("list teachers failed", zap.Error(err))
		b.sendError(chatID, errorText(err))
		return
	}
	if len(teachers) == 0 {
		b.sendMessage(chatID, "📝 Список учителей пуст")
		return
	}

	var sb strings.Builder
	sb.WriteString("👩‍🏫 Учителя:\n\n")
	for _, teacher := range teachers {
		sb.WriteString(fmt.Sprintf("%d - %s\n", teacher.ID, teacher.FullName()))
	}
	b.sendMessage(chatID, sb.String())
}

func (b *Bot) sendMessage(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendError(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(msg tgbotapi.MessageConfig) {
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("failed to send message", zap.Int64("chat_id", msg.ChatID), zap.Error(err))
	}
}

func (b *Bot) cancelOperation(chatID, userID int64) {
	b.resetSession(chatID)

	msg := tgbotapi.NewMessage(chatID, "❌ Операция отменена")
	msg.ReplyMarkup = createMainKeyboard(b.cfg.IsAdmin(userID))
	b.send(msg)
}
