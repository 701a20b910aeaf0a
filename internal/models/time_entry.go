package models

import (
	"fmt"
	"strings"
	"time"
)

type Day string

const (
	Monday    Day = "mon"
	Tuesday   Day = "tue"
	Wednesday Day = "wed"
	Thursday  Day = "thu"
	Friday    Day = "fri"
)

// Days - учебные дни недели по порядку
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

var dayNames = map[Day]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
}

var weekdayToDay = map[time.Weekday]Day{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
}

func (d Day) Valid() bool {
	_, ok := dayNames[d]
	return ok
}

func (d Day) DisplayName() string {
	if name, ok := dayNames[d]; ok {
		return name
	}
	return string(d)
}

// Index возвращает номер дня 1..5 (0 для неизвестного)
func (d Day) Index() int {
	for i, day := range Days {
		if day == d {
			return i + 1
		}
	}
	return 0
}

// DayFromWeekday возвращает учебный день, false для выходных
func DayFromWeekday(w time.Weekday) (Day, bool) {
	day, ok := weekdayToDay[w]
	return day, ok
}

// ParseDay принимает код ("mon") или полное название ("monday")
func ParseDay(s string) (Day, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, day := range Days {
		if s == string(day) || s == strings.ToLower(dayNames[day]) {
			return day, nil
		}
	}
	return "", fmt.Errorf("unknown day %q", s)
}

type Group string

const (
	GroupOne Group = "1"
	GroupTwo Group = "2"
	GroupAll Group = "all"
)

var groupNames = map[Group]string{
	GroupOne: "Group 1",
	GroupTwo: "Group 2",
	GroupAll: "All students",
}

func (g Group) Valid() bool {
	_, ok := groupNames[g]
	return ok
}

func (g Group) DisplayName() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return string(g)
}

func ParseGroup(s string) (Group, error) {
	g := Group(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", fmt.Errorf("unknown group %q", s)
	}
	return g, nil
}

// TimeEntry - один урок в расписании класса
type TimeEntry struct {
	ID            int64      `db:"id" json:"id"`
	Day           Day        `db:"day" json:"day"`
	Session       int        `db:"session" json:"session"`
	SchoolClassID int64      `db:"school_class_id" json:"school_class_id"`
	SubjectID     int64      `db:"subject_id" json:"subject_id"`
	TeacherID     int64      `db:"teacher_id" json:"teacher_id"`
	Group         Group      `db:"group" json:"group"`
	StartTime     *time.Time `db:"start_time" json:"start_time"` // ручное переопределение
	EndTime       *time.Time `db:"end_time" json:"end_time"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`

	// Joined fields
	ClassName   string      `db:"class_name" json:"class_name,omitempty"`
	SubjectCode SubjectCode `db:"subject_code" json:"subject_code,omitempty"`
	TeacherName string      `db:"teacher_name" json:"teacher_name,omitempty"`
}

// Validate проверяет значения перечислений и ссылки.
// Номер урока и конфликты проверяет пакет timetable.
func (e TimeEntry) Validate() error {
	if !e.Day.Valid() {
		return fmt.Errorf("invalid day %q", e.Day)
	}
	if !e.Group.Valid() {
		return fmt.Errorf("invalid group %q", e.Group)
	}
	if e.SchoolClassID == 0 || e.SubjectID == 0 || e.TeacherID == 0 {
		return fmt.Errorf("school class, subject and teacher are required")
	}
	return nil
}

func (e TimeEntry) String() string {
	return fmt.Sprintf("%s %d - %s (%s) %s", e.Day.DisplayName(), e.Session, e.ClassName, e.Group, e.SubjectCode.DisplayName())
}
