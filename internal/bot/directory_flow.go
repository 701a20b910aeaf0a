package bot

import (
	"context"
	"fmt"
	"school-timetable-bot/internal/models"
	"strings"

	"go.uber.org/zap"
)

func (b *Bot) handleAddClass(ctx context.Context, chatID int64, args string) {
	number, letter, err := models.ParseClassName(args)
	if err != nil {
		b.sendError(chatID, "❌ использование: /addclass <класс>, например /addclass 6A")
		return
	}

	class, err := b.ClassService.CreateClass(ctx, number, letter)
	if err != nil {
		b.sendError(chatID, errorText(err))
		return
	}

	b.logger.Info("school class created", zap.Int64("id", class.ID), zap.String("class", class.String()))
	b.sendMessage(chatID, fmt.Sprintf("✅ Класс %s добавлен", class.String()))
}

// handleRenameClass - /renameclass 6A 7A, уроки и ученики остаются за классом
func (b *Bot) handleRenameClass(ctx context.Context, chatID int64, args string) {
	oldName, newName, err := parseTwoArgs(args, "/renameclass <класс> <новое имя>, например /renameclass 6A 7A")
	if err != nil {
		b.sendError(chatID, "❌ "+err.Error())
		return
	}

	number, letter, err := models.ParseClassName(newName)
	if err != nil {
		b.sendError(chatID, "❌ "+err.Error())
		return
	}

	class, ok := b.findClass(ctx, chatID, oldName)
	if !ok {
		return
	}

	if err := b.ClassService.RenameClass(ctx, class.ID, number, letter); err != nil {
		b.sendError(chatID, errorText(err))
		return
	}

	renamed := models.SchoolClass{Number: number, Letter: letter}
	b.sendMessage(chatID, fmt.Sprintf("✅ Класс %s переименован в %s", class.String(), renamed.String()))
}

func (b *Bot) handleAddTeacher(ctx context.Context, chatID int64, args string) {
	firstName, lastName, err := parseTwoArgs(args, "/addteacher <имя> <фамилия>")
	if err != nil {
		b.sendError(chatID, "❌ "+err.Error())
		return
	}

	teacher, err := b.TeacherService.AddTeacher(ctx, firstName, lastName)
	if err != nil {
		b.sendError(chatID, errorText(err))
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("✅ Учитель добавлен: %d - %s", teacher.ID, teacher.FullName()))
}

func (b *Bot) handleAddPupil(ctx context.Context, chatID int64, args string) {
	cmd, err := parseAddPupilCommand(args)
	if err != nil {
		b.sendError(chatID, "❌ "+err.Error())
		return
	}

	class, ok := b.findClass(ctx, chatID, cmd.ClassName)
	if !ok {
		return
	}

	pupil := &models.Pupil{
		FirstName:     cmd.FirstName,
		LastName:      cmd.LastName,
		SchoolClassID: class.ID,
		Group:         cmd.Group,
	}
	if err := b.PupilService.AddPupil(ctx, pupil); err != nil {
		b.sendError(chatID, errorText(err))
		return
	}

	text := fmt.Sprintf("✅ Ученик добавлен: %s, %s", pupil.FullName(), class.String())
	if pupil.Group != nil {
		text += " (" + pupil.Group.DisplayName() + ")"
	}
	b.sendMessage(chatID, text)
}

// handleFindPupils ищет учеников без привязки к текущему уроку
func (b *Bot) handleFindPupils(ctx context.Context, chatID int64, query string) {
	if query == "" {
		b.sendError(chatID, "❌ использование: /find <имя или фамилия>")
		return
	}

	pupils, err := b.PupilService.SearchPupils(ctx, query)
	if err != nil {
		b.logger.Error("search pupils failed", zap.String("query", query), zap.Error(err))
		b.sendError(chatID, errorText(err))
		return
	}
	if len(pupils) == 0 {
		b.sendMessage(chatID, fmt.Sprintf("🤷 Ученики по запросу «%s» не найдены", query))
		return
	}

	var sb strings.Builder
	sb.WriteString("🔎 Найдены:\n\n")
	for _, pupil := range pupils {
		sb.WriteString(fmt.Sprintf("👤 %s, %s", pupil.FullName(), pupil.ClassName))
		if pupil.Group != nil {
			sb.WriteString(" (" + pupil.Group.DisplayName() + ")")
		}
		sb.WriteString("\n")
	}
	b.sendMessage(chatID, sb.String())
}

func (b *Bot) showSubjects(ctx context.Context, chatID int64) {
	subjects, err := b.SubjectService.GetAllSubjects(ctx)
	if err != nil {
		b.logger.Error("list subjects failed", zap.Error(err))
		b.sendError(chatID, errorText(err))
		return
	}

	var sb strings.Builder
	sb.WriteString("📘 Предметы:\n\n")
	for _, subject := range subjects {
		sb.WriteString(fmt.Sprintf("%s - %s\n", subject.Code, subject.Code.DisplayName()))
	}
	b.sendMessage(chatID, sb.String())
}
