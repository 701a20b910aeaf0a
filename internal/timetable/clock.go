// Package timetable вычисляет время уроков по номеру и проверяет
// конфликты записей расписания внутри одного слота (день, урок).
package timetable

import "time"

const (
	FirstSession = 1
	LastSession  = 8

	LessonDuration = 45 * time.Minute
	ShortBreak     = 5 * time.Minute
	LongBreak      = 45 * time.Minute
	LongBreakAfter = 4 // большая перемена после 4-го урока
)

var dayStart = Clock(8, 30)

// Clock возвращает время суток на опорной дате 0000-01-01 UTC.
// Эту же дату lib/pq использует при чтении колонок TIME.
func Clock(hour, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
}

// TimeOfDay переносит время суток t на опорную дату, отбрасывая дату и зону.
func TimeOfDay(t time.Time) time.Time {
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func CheckSession(session int) error {
	if session < FirstSession || session > LastSession {
		return &SessionError{Session: session}
	}
	return nil
}

// SessionTimes возвращает начало и конец урока с номером session.
func SessionTimes(session int) (time.Time, time.Time, error) {
	if err := CheckSession(session); err != nil {
		return time.Time{}, time.Time{}, err
	}

	current := dayStart
	for s := FirstSession; s < session; s++ {
		current = current.Add(LessonDuration)
		if s == LongBreakAfter {
			current = current.Add(LongBreak)
		} else {
			current = current.Add(ShortBreak)
		}
	}

	return current, current.Add(LessonDuration), nil
}

type SessionRange struct {
	Session int
	Start   time.Time
	End     time.Time
}

// Contains проверяет попадание времени суток в полуинтервал [Start, End).
func (r SessionRange) Contains(t time.Time) bool {
	tod := TimeOfDay(t)
	return !tod.Before(r.Start) && tod.Before(r.End)
}

var sessionTable = buildSessionTable()

func buildSessionTable() []SessionRange {
	table := make([]SessionRange, 0, LastSession)
	for s := FirstSession; s <= LastSession; s++ {
		start, end, _ := SessionTimes(s)
		table = append(table, SessionRange{Session: s, Start: start, End: end})
	}
	return table
}

// Sessions возвращает расписание звонков на все уроки.
func Sessions() []SessionRange {
	out := make([]SessionRange, len(sessionTable))
	copy(out, sessionTable)
	return out
}

// CurrentSession возвращает номер урока, идущего в момент t, или false на перемене и вне уроков.
func CurrentSession(t time.Time) (int, bool) {
	for _, r := range sessionTable {
		if r.Contains(t) {
			return r.Session, true
		}
	}
	return 0, false
}
