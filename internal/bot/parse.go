package bot

import (
	"fmt"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/timetable"
	"strconv"
	"strings"
	"time"
)

// addCommand - аргументы /add
type addCommand struct {
	Day       models.Day
	Session   int
	ClassName string
	Subject   models.SubjectCode
	TeacherID int64
	Group     models.Group
	StartTime *time.Time
	EndTime   *time.Time
}

// moveCommand - аргументы /move
type moveCommand struct {
	EntryID   int64
	Day       models.Day
	Session   int
	StartTime *time.Time
	EndTime   *time.Time
}

// parseClock разбирает "HH:MM" во время суток на опорной дате
func parseClock(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("время должно быть в формате ЧЧ:ММ, получено %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("неверный час в %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("неверные минуты в %q", s)
	}

	return timetable.Clock(hour, minute), nil
}

// parseTimeRange разбирает "HH:MM-HH:MM"
func parseTimeRange(s string) (time.Time, time.Time, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("интервал должен быть в формате ЧЧ:ММ-ЧЧ:ММ, получено %q", s)
	}

	start, err := parseClock(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseClock(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("конец урока должен быть позже начала: %q", s)
	}
	return start, end, nil
}

func parseSession(s string) (int, error) {
	session, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("номер урока должен быть числом, получено %q", s)
	}
	return session, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("неверный id %q", s)
	}
	return id, nil
}

// parseClassDay разбирает "<класс> <день>" для /day
func parseClassDay(args string) (string, models.Day, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("использование: /day <класс> <день>, например /day 6A mon")
	}

	day, err := models.ParseDay(fields[1])
	if err != nil {
		return "", "", err
	}
	return fields[0], day, nil
}

// parseClassAt разбирает "<класс> <день> <ЧЧ:ММ>" для /at
func parseClassAt(args string) (string, models.Day, time.Time, error) {
	fields := strings.Fields(args)
	if len(fields) != 3 {
		return "", "", time.Time{}, fmt.Errorf("использование: /at <класс> <день> <ЧЧ:ММ>, например /at 6A tue 09:30")
	}

	day, err := models.ParseDay(fields[1])
	if err != nil {
		return "", "", time.Time{}, err
	}
	at, err := parseClock(fields[2])
	if err != nil {
		return "", "", time.Time{}, err
	}
	return fields[0], day, at, nil
}

func parseAddCommand(args string) (*addCommand, error) {
	fields := strings.Fields(args)
	if len(fields) != 6 && len(fields) != 7 {
		return nil, fmt.Errorf("использование: /add <день> <урок> <класс> <предмет> <id учителя> <группа> [ЧЧ:ММ-ЧЧ:ММ]")
	}

	cmd := &addCommand{ClassName: fields[2]}
	var err error

	if cmd.Day, err = models.ParseDay(fields[0]); err != nil {
		return nil, err
	}
	if cmd.Session, err = parseSession(fields[1]); err != nil {
		return nil, err
	}
	if cmd.Subject, err = models.ParseSubjectCode(strings.ToLower(fields[3])); err != nil {
		return nil, err
	}
	if cmd.TeacherID, err = parseID(fields[4]); err != nil {
		return nil, err
	}
	if cmd.Group, err = models.ParseGroup(fields[5]); err != nil {
		return nil, err
	}

	if len(fields) == 7 {
		start, end, err := parseTimeRange(fields[6])
		if err != nil {
			return nil, err
		}
		cmd.StartTime, cmd.EndTime = &start, &end
	}
	return cmd, nil
}

func parseMoveCommand(args string) (*moveCommand, error) {
	fields := strings.Fields(args)
	if len(fields) != 3 && len(fields) != 4 {
		return nil, fmt.Errorf("использование: /move <id урока> <день> <урок> [ЧЧ:ММ-ЧЧ:ММ]")
	}

	cmd := &moveCommand{}
	var err error

	if cmd.EntryID, err = parseID(fields[0]); err != nil {
		return nil, err
	}
	if cmd.Day, err = models.ParseDay(fields[1]); err != nil {
		return nil, err
	}
	if cmd.Session, err = parseSession(fields[2]); err != nil {
		return nil, err
	}

	if len(fields) == 4 {
		start, end, err := parseTimeRange(fields[3])
		if err != nil {
			return nil, err
		}
		cmd.StartTime, cmd.EndTime = &start, &end
	}
	return cmd, nil
}

// pupilCommand - аргументы /addpupil
type pupilCommand struct {
	ClassName string
	FirstName string
	LastName  string
	Group     *models.Group
}

func parseAddPupilCommand(args string) (*pupilCommand, error) {
	fields := strings.Fields(args)
	if len(fields) != 3 && len(fields) != 4 {
		return nil, fmt.Errorf("использование: /addpupil <класс> <имя> <фамилия> [1|2]")
	}

	cmd := &pupilCommand{ClassName: fields[0], FirstName: fields[1], LastName: fields[2]}
	if len(fields) == 4 {
		group, err := models.ParseGroup(fields[3])
		if err != nil || group == models.GroupAll {
			return nil, fmt.Errorf("группа ученика: 1 или 2, получено %q", fields[3])
		}
		cmd.Group = &group
	}
	return cmd, nil
}

// parseTwoArgs разбирает ровно два слова, usage - текст подсказки
func parseTwoArgs(args, usage string) (string, string, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("использование: %s", usage)
	}
	return fields[0], fields[1], nil
}
