package bot

import (
	"context"
	"fmt"
	"school-timetable-bot/internal/models"

	"go.uber.org/zap"
)

func (b *Bot) handleAddEntry(ctx context.Context, chatID int64, args string) {
	cmd, err := parseAddCommand(args)
	if err != nil {
		b.sendError(chatID, "❌ "+err.Error())
		return
	}

	class, ok := b.findClass(ctx, chatID, cmd.ClassName)
	if !ok {
		return
	}

	subject, err := b.SubjectService.GetSubjectByCode(ctx, cmd.Subject)
	if err != nil {
		b.sendError(chatID, errorText(err))
		return
	}

	saved, err := b.TimetableService.CreateEntry(ctx, models.TimeEntry{
		Day:           cmd.Day,
		Session:       cmd.Session,
		SchoolClassID: class.ID,
		SubjectID:     subject.ID,
		TeacherID:     cmd.TeacherID,
		Group:         cmd.Group,
		StartTime:     cmd.StartTime,
		EndTime:       cmd.EndTime,
	})
	if err != nil {
		b.sendError(chatID, errorText(err))
		return
	}

	b.sendEntrySaved(ctx, chatID, "✅ Урок добавлен", saved)
}

// handleMoveEntry переносит урок в другой слот. Без интервала ручное время сбрасывается.
func (b *Bot) handleMoveEntry(ctx context.Context, chatID int64, args string) {
	cmd, err := parseMoveCommand(args)
	if err != nil {
		b.sendError(chatID, "❌ "+err.Error())
		return
	}

	entry, err := b.TimetableService.GetEntry(ctx, cmd.EntryID)
	if err != nil {
		b.sendError(chatID, errorText(err))
		return
	}

	entry.Day = cmd.Day
	entry.Session = cmd.Session
	entry.StartTime, entry.EndTime = cmd.StartTime, cmd.EndTime

	saved, err := b.TimetableService.UpdateEntry(ctx, *entry)
	if err != nil {
		b.sendError(chatID, errorText(err))
		return
	}

	b.sendEntrySaved(ctx, chatID, "✅ Урок перенесён", saved)
}

func (b *Bot) handleDeleteEntry(ctx context.Context, chatID int64, args string) {
	id, err := parseID(args)
	if err != nil {
		b.sendError(chatID, "❌ использование: /del <id урока>")
		return
	}

	if err := b.TimetableService.DeleteEntry(ctx, id); err != nil {
		b.sendError(chatID, errorText(err))
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("🗑️ Урок #%d удалён", id))
}

// sendEntrySaved перечитывает запись, чтобы показать класс, предмет и учителя
func (b *Bot) sendEntrySaved(ctx context.Context, chatID int64, title string, saved *models.TimeEntry) {
	entry, err := b.TimetableService.GetEntry(ctx, saved.ID)
	if err != nil {
		b.logger.Warn("failed to reload saved entry", zap.Int64("id", saved.ID), zap.Error(err))
		entry = saved
	}

	b.sendMessage(chatID, fmt.Sprintf("%s\n\n📅 %s, %s\n%s", title, entry.Day.DisplayName(), entry.ClassName, formatEntry(*entry)))
}
