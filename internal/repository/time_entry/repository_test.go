package time_entry

import (
	"fmt"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/timetable"
	"testing"
	"time"
)

func TestSlotKeyUnique(t *testing.T) {
	seen := make(map[int]string)
	for _, day := range models.Days {
		for session := timetable.FirstSession; session <= timetable.LastSession; session++ {
			key := slotKey(day, session)
			slot := fmt.Sprintf("%s/%d", day, session)
			if other, ok := seen[key]; ok {
				t.Errorf("slotKey(%s) = %d collides with %s", slot, key, other)
			}
			seen[key] = slot
		}
	}

	if want := len(models.Days) * timetable.LastSession; len(seen) != want {
		t.Errorf("got %d distinct keys, want %d", len(seen), want)
	}
}

func TestCheckSlot(t *testing.T) {
	slot := &slotStore{day: models.Tuesday, session: 3}

	tests := []struct {
		name    string
		day     models.Day
		session int
		wantErr bool
	}{
		{name: "same slot", day: models.Tuesday, session: 3},
		{name: "other session", day: models.Tuesday, session: 4, wantErr: true},
		{name: "other day", day: models.Wednesday, session: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &models.TimeEntry{Day: tt.day, Session: tt.session}
			if err := slot.checkSlot(entry); (err != nil) != tt.wantErr {
				t.Errorf("checkSlot(%s/%d) error = %v, wantErr %v", tt.day, tt.session, err, tt.wantErr)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	if got := formatClock(nil); got != nil {
		t.Errorf("formatClock(nil) = %v, want nil", got)
	}

	at := timetable.Clock(9, 20)
	if got := formatClock(&at); got != "09:20:00" {
		t.Errorf("formatClock(09:20) = %v, want 09:20:00", got)
	}

	// Дата и зона в колонку не попадают
	local := time.Date(2025, 10, 14, 14, 5, 0, 0, time.FixedZone("MSK", 3*60*60))
	if got := formatClock(&local); got != "14:05:00" {
		t.Errorf("formatClock(%v) = %v, want 14:05:00", local, got)
	}
}
