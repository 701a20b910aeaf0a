package service

import (
	"context"
	"errors"
	"school-timetable-bot/internal/models"
	"time"
)

var (
	ErrClassNotFound   = errors.New("school class not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrEntryNotFound   = errors.New("time entry not found")
	ErrClassExists     = errors.New("school class already exists")
)

type SchoolClassService interface {
	CreateClass(ctx context.Context, number int, letter string) (*models.SchoolClass, error)
	RenameClass(ctx context.Context, id int64, number int, letter string) error
	// GetClassByName принимает имя вида "6A"
	GetClassByName(ctx context.Context, name string) (*models.SchoolClass, error)
	GetAllClasses(ctx context.Context) ([]models.SchoolClass, error)
}

type PupilService interface {
	AddPupil(ctx context.Context, pupil *models.Pupil) error
	SearchPupils(ctx context.Context, query string) ([]models.Pupil, error)
	GetClassPupils(ctx context.Context, classID int64) ([]models.Pupil, error)
}

type TeacherService interface {
	AddTeacher(ctx context.Context, firstName, lastName string) (*models.Teacher, error)
	GetAllTeachers(ctx context.Context) ([]models.Teacher, error)
}

type SubjectService interface {
	GetSubjectByCode(ctx context.Context, code models.SubjectCode) (*models.Subject, error)
	GetAllSubjects(ctx context.Context) ([]models.Subject, error)
}

type TimetableService interface {
	// Создание и изменение уроков проходят проверку конфликтов слота
	CreateEntry(ctx context.Context, entry models.TimeEntry) (*models.TimeEntry, error)
	UpdateEntry(ctx context.Context, entry models.TimeEntry) (*models.TimeEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
	GetEntry(ctx context.Context, id int64) (*models.TimeEntry, error)

	// Просмотр
	PupilNow(ctx context.Context, query string, now time.Time) (*models.PupilNowReport, error)
	ClassAt(ctx context.Context, classID int64, day models.Day, at time.Time) ([]models.TimeEntry, error)
	ClassDay(ctx context.Context, classID int64, day models.Day) ([]models.TimeEntry, error)
}
