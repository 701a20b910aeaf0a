package bot

import (
	"errors"
	"fmt"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/service"
	"school-timetable-bot/internal/timetable"
	"strings"
)

const clockLayout = "15:04"

func formatInterval(e models.TimeEntry) string {
	if e.StartTime == nil || e.EndTime == nil {
		return "--:--"
	}
	return e.StartTime.Format(clockLayout) + "-" + e.EndTime.Format(clockLayout)
}

// formatEntry - одна строка урока: номер, время, предмет, группа, учитель
func formatEntry(e models.TimeEntry) string {
	line := fmt.Sprintf("%d. %s %s", e.Session, formatInterval(e), e.SubjectCode.DisplayName())
	if e.Group != models.GroupAll {
		line += " (" + e.Group.DisplayName() + ")"
	}
	if e.TeacherName != "" {
		line += " - " + e.TeacherName
	}
	return line + fmt.Sprintf(" [#%d]", e.ID)
}

func formatSessions() string {
	var sb strings.Builder
	sb.WriteString("🔔 Расписание звонков:\n\n")
	for _, r := range timetable.Sessions() {
		sb.WriteString(fmt.Sprintf("%d. %s-%s\n", r.Session, r.Start.Format(clockLayout), r.End.Format(clockLayout)))
	}
	return sb.String()
}

func formatClassDay(className string, day models.Day, entries []models.TimeEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("📭 У %s в %s уроков нет", className, day.DisplayName())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📅 %s, %s:\n\n", className, day.DisplayName()))
	for _, e := range entries {
		sb.WriteString(formatEntry(e) + "\n")
	}
	return sb.String()
}

func formatClassAt(className string, day models.Day, at string, entries []models.TimeEntry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("☕ У %s в %s %s урока нет", className, day.DisplayName(), at)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📍 %s, %s %s:\n\n", className, day.DisplayName(), at))
	for _, e := range entries {
		sb.WriteString(formatEntry(e) + "\n")
	}
	return sb.String()
}

func formatPupilNow(report *models.PupilNowReport) string {
	switch report.Status {
	case models.PupilNowWeekend:
		return "🏖 Сегодня выходной, уроков нет"
	case models.PupilNowNoSession:
		return fmt.Sprintf("☕ Сейчас (%s) урока нет", report.Now.Format(clockLayout))
	case models.PupilNowEmptyQuery:
		return "✏️ Введите имя или фамилию ученика"
	case models.PupilNowNoPupils:
		return fmt.Sprintf("🤷 Ученики по запросу «%s» не найдены", report.Query)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔎 %s, урок %d:\n\n", report.Day.DisplayName(), report.Session))
	for _, result := range report.Results {
		pupil := result.Pupil
		sb.WriteString(fmt.Sprintf("👤 %s, %s", pupil.FullName(), pupil.ClassName))
		if pupil.Group != nil {
			sb.WriteString(" (" + pupil.Group.DisplayName() + ")")
		}
		sb.WriteString("\n")

		if len(result.Entries) == 0 {
			sb.WriteString("   урока нет\n\n")
			continue
		}
		for _, e := range result.Entries {
			sb.WriteString("   " + formatEntry(e) + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// errorText превращает ошибку сервиса в ответ пользователю.
// Отказы проверки расписания передаются как есть.
func errorText(err error) string {
	var conflict *timetable.ConflictError
	var invalidSession *timetable.SessionError

	switch {
	case errors.As(err, &conflict), errors.As(err, &invalidSession):
		return "❌ " + err.Error()
	case errors.Is(err, timetable.ErrPersistenceConflict):
		return "⚠️ Слот только что изменился, такая запись уже есть. Обновите расписание и попробуйте ещё раз"
	case errors.Is(err, service.ErrClassNotFound):
		return "❌ Класс не найден"
	case errors.Is(err, service.ErrClassExists):
		return "❌ Такой класс уже есть"
	case errors.Is(err, service.ErrTeacherNotFound):
		return "❌ Учитель не найден, список: /teachers"
	case errors.Is(err, service.ErrSubjectNotFound):
		return "❌ Предмет не найден"
	case errors.Is(err, service.ErrEntryNotFound):
		return "❌ Урок не найден"
	}
	return "❌ Ошибка при выполнении запроса"
}
