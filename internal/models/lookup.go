package models

import "time"

type PupilNowStatus int

const (
	PupilNowFound PupilNowStatus = iota
	PupilNowWeekend
	PupilNowNoSession
	PupilNowEmptyQuery
	PupilNowNoPupils
)

// PupilNowReport - ответ на вопрос "где сейчас ученик"
type PupilNowReport struct {
	Query   string
	Now     time.Time
	Day     Day // пусто в выходные
	Session int // 0 вне уроков
	Status  PupilNowStatus
	Results []PupilSchedule
}

type PupilSchedule struct {
	Pupil   Pupil
	Entries []TimeEntry // StartTime/EndTime заполнены всегда
}
