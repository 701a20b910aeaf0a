package timetable

import "school-timetable-bot/internal/models"

// FillTimes подставляет время начала и конца урока, если оно не задано вручную.
// Ручные значения не пересчитываются и не сверяются с расписанием звонков.
func FillTimes(entry models.TimeEntry) (models.TimeEntry, error) {
	start, end, err := SessionTimes(entry.Session)
	if err != nil {
		return models.TimeEntry{}, err
	}
	if entry.StartTime == nil {
		entry.StartTime = &start
	}
	if entry.EndTime == nil {
		entry.EndTime = &end
	}
	return entry, nil
}

// Validate проверяет кандидата против записей того же слота (day, session).
//
// Признак обновления и его self id не передаются отдельно, их несёт candidate.ID:
// ID == 0 - создание, existing проверяется целиком; ID != 0 - обновление записи
// с этим ID, она исключается из existing и не конфликтует сама с собой.
// Поэтому кандидат на создание обязан иметь нулевой ID (CreateEntry его обнуляет),
// а ID обновления должен ссылаться на существующую запись (UpdateEntry это проверяет).
//
// Порядок проверок фиксирован: учитель, затем класс и группы.
func Validate(candidate models.TimeEntry, existing []models.TimeEntry) (models.TimeEntry, error) {
	filled, err := FillTimes(candidate)
	if err != nil {
		return models.TimeEntry{}, err
	}

	scope := slotScope(filled, existing)

	for _, e := range scope {
		if e.TeacherID == filled.TeacherID {
			return models.TimeEntry{}, &ConflictError{Kind: ErrTeacherConflict, Field: "teacher", Existing: e}
		}
	}

	var classEntries []models.TimeEntry
	for _, e := range scope {
		if e.SchoolClassID == filled.SchoolClassID {
			classEntries = append(classEntries, e)
		}
	}

	for _, e := range classEntries {
		if e.Group == models.GroupAll {
			return models.TimeEntry{}, &ConflictError{Kind: ErrAllSlotOccupied, Field: "school_class", Existing: e}
		}
	}

	if filled.Group == models.GroupAll && len(classEntries) > 0 {
		return models.TimeEntry{}, &ConflictError{Kind: ErrGroupSplitExists, Field: "group", Existing: classEntries[0]}
	}

	if len(classEntries) >= 2 {
		return models.TimeEntry{}, &ConflictError{Kind: ErrSessionFull, Field: "school_class", Existing: classEntries[0]}
	}

	for _, e := range classEntries {
		if e.Group == filled.Group {
			return models.TimeEntry{}, &ConflictError{Kind: ErrDuplicateGroup, Field: "group", Existing: e}
		}
	}

	return filled, nil
}

func slotScope(candidate models.TimeEntry, existing []models.TimeEntry) []models.TimeEntry {
	scope := make([]models.TimeEntry, 0, len(existing))
	for _, e := range existing {
		if e.Day != candidate.Day || e.Session != candidate.Session {
			continue
		}
		if candidate.ID != 0 && e.ID == candidate.ID {
			continue
		}
		scope = append(scope, e)
	}
	return scope
}
