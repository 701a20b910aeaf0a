package timetable

import (
	"errors"
	"testing"
	"time"
)

func TestSessionTimes(t *testing.T) {
	tests := []struct {
		session   int
		wantStart string
		wantEnd   string
	}{
		{session: 1, wantStart: "08:30", wantEnd: "09:15"},
		{session: 2, wantStart: "09:20", wantEnd: "10:05"},
		{session: 3, wantStart: "10:10", wantEnd: "10:55"},
		{session: 4, wantStart: "11:00", wantEnd: "11:45"},
		{session: 5, wantStart: "12:30", wantEnd: "13:15"},
		{session: 6, wantStart: "13:20", wantEnd: "14:05"},
		{session: 7, wantStart: "14:10", wantEnd: "14:55"},
		{session: 8, wantStart: "15:00", wantEnd: "15:45"},
	}

	for _, tt := range tests {
		start, end, err := SessionTimes(tt.session)
		if err != nil {
			t.Fatalf("SessionTimes(%d) unexpected error: %v", tt.session, err)
		}
		if got := start.Format("15:04"); got != tt.wantStart {
			t.Errorf("SessionTimes(%d) start = %s, want %s", tt.session, got, tt.wantStart)
		}
		if got := end.Format("15:04"); got != tt.wantEnd {
			t.Errorf("SessionTimes(%d) end = %s, want %s", tt.session, got, tt.wantEnd)
		}
	}
}

func TestSessionTimesArithmetic(t *testing.T) {
	first, _, _ := SessionTimes(1)
	if !first.Equal(Clock(8, 30)) {
		t.Fatalf("start(1) = %v, want 08:30", first)
	}

	for s := FirstSession; s <= LastSession; s++ {
		start, end, _ := SessionTimes(s)
		if end.Sub(start) != 45*time.Minute {
			t.Errorf("session %d lasts %v, want 45m", s, end.Sub(start))
		}
		if s == LastSession {
			continue
		}

		next, _, _ := SessionTimes(s + 1)
		want := 50 * time.Minute
		if s == 4 {
			want = 90 * time.Minute
		}
		if got := next.Sub(start); got != want {
			t.Errorf("start(%d) - start(%d) = %v, want %v", s+1, s, got, want)
		}
	}
}

func TestSessionTimesInvalid(t *testing.T) {
	for _, session := range []int{0, 9, -1, 100} {
		start, end, err := SessionTimes(session)
		if !errors.Is(err, ErrInvalidSession) {
			t.Errorf("SessionTimes(%d) error = %v, want ErrInvalidSession", session, err)
		}
		var sessionErr *SessionError
		if !errors.As(err, &sessionErr) || sessionErr.Session != session {
			t.Errorf("SessionTimes(%d) error = %#v, want *SessionError{%d}", session, err, session)
		}
		if !start.IsZero() || !end.IsZero() {
			t.Errorf("SessionTimes(%d) returned partial result %v-%v", session, start, end)
		}
	}
}

func TestSessionTimesIgnoresCurrentDate(t *testing.T) {
	start, _, _ := SessionTimes(3)
	if start.Year() != 0 || start.Month() != time.January || start.Day() != 1 {
		t.Errorf("start date = %s, want canonical 0000-01-01", start.Format("2006-01-02"))
	}
	if start.Location() != time.UTC {
		t.Errorf("start location = %v, want UTC", start.Location())
	}
}

func TestCurrentSession(t *testing.T) {
	day := time.Date(2025, 10, 13, 0, 0, 0, 0, time.Local)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	tests := []struct {
		name   string
		now    time.Time
		want   int
		wantOK bool
	}{
		{name: "before school", now: at(8, 29), wantOK: false},
		{name: "first lesson starts", now: at(8, 30), want: 1, wantOK: true},
		{name: "first lesson end is exclusive", now: at(9, 15), wantOK: false},
		{name: "short break", now: at(9, 17), wantOK: false},
		{name: "second lesson", now: at(9, 20), want: 2, wantOK: true},
		{name: "long break", now: at(12, 0), wantOK: false},
		{name: "fifth lesson", now: at(12, 30), want: 5, wantOK: true},
		{name: "last minute of day", now: at(15, 44), want: 8, wantOK: true},
		{name: "after school", now: at(15, 45), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CurrentSession(tt.now)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("CurrentSession(%s) = %d, %v; want %d, %v", tt.now.Format("15:04"), got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSessionsReturnsCopy(t *testing.T) {
	sessions := Sessions()
	if len(sessions) != LastSession {
		t.Fatalf("len(Sessions()) = %d, want %d", len(sessions), LastSession)
	}
	sessions[0].Start = Clock(0, 0)

	if got, _ := CurrentSession(Clock(0, 10)); got != 0 {
		t.Errorf("mutating Sessions() result changed the lookup table")
	}
}
