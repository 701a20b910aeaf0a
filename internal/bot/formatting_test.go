package bot

import (
	"fmt"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/service"
	"school-timetable-bot/internal/timetable"
	"strings"
	"testing"
	"time"
)

func filledEntry(id int64, session int, group models.Group) models.TimeEntry {
	start, end, _ := timetable.SessionTimes(session)
	return models.TimeEntry{
		ID:          id,
		Day:         models.Tuesday,
		Session:     session,
		Group:       group,
		StartTime:   &start,
		EndTime:     &end,
		ClassName:   "6A",
		SubjectCode: models.SubjectMath,
		TeacherName: "Alice Johnson",
	}
}

func TestFormatEntry(t *testing.T) {
	tests := []struct {
		name  string
		entry models.TimeEntry
		want  string
	}{
		{
			name:  "whole class",
			entry: filledEntry(7, 1, models.GroupAll),
			want:  "1. 08:30-09:15 Mathematics - Alice Johnson [#7]",
		},
		{
			name:  "group",
			entry: filledEntry(8, 5, models.GroupTwo),
			want:  "5. 12:30-13:15 Mathematics (Group 2) - Alice Johnson [#8]",
		},
		{
			name:  "no times",
			entry: models.TimeEntry{ID: 9, Session: 2, Group: models.GroupAll, SubjectCode: models.SubjectIT},
			want:  "2. --:-- Information Technology [#9]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatEntry(tt.entry); got != tt.want {
				t.Errorf("formatEntry() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatSessions(t *testing.T) {
	text := formatSessions()
	for _, line := range []string{"1. 08:30-09:15", "4. 11:00-11:45", "5. 12:30-13:15", "8. 15:00-15:45"} {
		if !strings.Contains(text, line) {
			t.Errorf("formatSessions() missing %q in:\n%s", line, text)
		}
	}
}

func TestFormatPupilNow(t *testing.T) {
	groupTwo := models.GroupTwo
	now := time.Date(2025, 10, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		report models.PupilNowReport
		want   []string
	}{
		{name: "weekend", report: models.PupilNowReport{Status: models.PupilNowWeekend}, want: []string{"выходной"}},
		{name: "no session", report: models.PupilNowReport{Status: models.PupilNowNoSession, Now: now}, want: []string{"09:30", "урока нет"}},
		{name: "empty query", report: models.PupilNowReport{Status: models.PupilNowEmptyQuery}, want: []string{"Введите имя"}},
		{name: "no pupils", report: models.PupilNowReport{Status: models.PupilNowNoPupils, Query: "Nobody"}, want: []string{"«Nobody»"}},
		{
			name: "found",
			report: models.PupilNowReport{
				Status:  models.PupilNowFound,
				Day:     models.Tuesday,
				Session: 2,
				Results: []models.PupilSchedule{
					{
						Pupil:   models.Pupil{FirstName: "Lucy", LastName: "White", ClassName: "6A", Group: &groupTwo},
						Entries: []models.TimeEntry{filledEntry(3, 2, models.GroupTwo)},
					},
					{Pupil: models.Pupil{FirstName: "Tom", LastName: "Black", ClassName: "7B"}},
				},
			},
			want: []string{"Tuesday, урок 2", "Lucy White, 6A (Group 2)", "09:20-10:05 Mathematics (Group 2)", "Tom Black, 7B\n   урока нет"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatPupilNow(&tt.report)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("formatPupilNow() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestErrorText(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "conflict verbatim",
			err:  fmt.Errorf("save: %w", &timetable.ConflictError{Kind: timetable.ErrTeacherConflict, Field: "teacher"}),
			want: "❌ save: teacher already scheduled at this time",
		},
		{
			name: "invalid session verbatim",
			err:  &timetable.SessionError{Session: 9},
			want: "❌ invalid session 9: must be between 1 and 8",
		},
		{
			name: "persistence conflict",
			err:  &timetable.PersistenceError{Err: fmt.Errorf("duplicate")},
			want: "⚠️ Слот только что изменился, такая запись уже есть. Обновите расписание и попробуйте ещё раз",
		},
		{name: "class not found", err: service.ErrClassNotFound, want: "❌ Класс не найден"},
		{name: "class exists", err: fmt.Errorf("rename: %w", service.ErrClassExists), want: "❌ Такой класс уже есть"},
		{name: "entry not found", err: service.ErrEntryNotFound, want: "❌ Урок не найден"},
		{name: "other", err: fmt.Errorf("connection refused"), want: "❌ Ошибка при выполнении запроса"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorText(tt.err); got != tt.want {
				t.Errorf("errorText() = %q, want %q", got, tt.want)
			}
		})
	}
}
