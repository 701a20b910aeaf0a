package repository

import (
	"context"
	"errors"
	"school-timetable-bot/internal/models"
)

// ErrUniqueViolation возвращается, когда запись нарушает уникальный индекс БД
var ErrUniqueViolation = errors.New("unique constraint violation")

// ErrNotFound возвращается изменяющими методами, когда целевой записи нет
var ErrNotFound = errors.New("record not found")

type SchoolClassRepository interface {
	Create(ctx context.Context, class *models.SchoolClass) error
	GetByID(ctx context.Context, id int64) (*models.SchoolClass, error)
	GetByNumberLetter(ctx context.Context, number int, letter string) (*models.SchoolClass, error)
	GetAll(ctx context.Context) ([]models.SchoolClass, error)
	Rename(ctx context.Context, id int64, number int, letter string) error
}

type PupilRepository interface {
	Create(ctx context.Context, pupil *models.Pupil) error
	GetByClass(ctx context.Context, classID int64) ([]models.Pupil, error)
	// Поиск по имени или фамилии без учёта регистра
	Search(ctx context.Context, query string, limit int) ([]models.Pupil, error)
}

type TeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]models.Teacher, error)
}

type SubjectRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
	GetByCode(ctx context.Context, code models.SubjectCode) (*models.Subject, error)
	GetAll(ctx context.Context) ([]models.Subject, error)
}

type TimeEntryRepository interface {
	// WithinSlot выполняет fn в транзакции, эксклюзивной для пары (day, session):
	// чтение слота и запись не перемежаются с другими записями того же слота.
	WithinSlot(ctx context.Context, day models.Day, session int, fn func(slot SlotStore) error) error

	GetByID(ctx context.Context, id int64) (*models.TimeEntry, error)
	ListByClassDay(ctx context.Context, classID int64, day models.Day) ([]models.TimeEntry, error)
	ListByClassDaySession(ctx context.Context, classID int64, day models.Day, session int) ([]models.TimeEntry, error)
	Delete(ctx context.Context, id int64) error
}

// SlotStore - операции над одним слотом внутри WithinSlot
type SlotStore interface {
	List(ctx context.Context) ([]models.TimeEntry, error)
	Insert(ctx context.Context, entry *models.TimeEntry) error
	Update(ctx context.Context, entry *models.TimeEntry) error
}
