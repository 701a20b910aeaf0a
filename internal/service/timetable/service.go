package timetable_service

import (
	"context"
	"errors"
	"fmt"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/repository"
	"school-timetable-bot/internal/service"
	"school-timetable-bot/internal/timetable"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SearchLimit - максимум учеников в ответе PupilNow
const SearchLimit = 50

type timetableService struct {
	entryRepo   repository.TimeEntryRepository
	classRepo   repository.SchoolClassRepository
	pupilRepo   repository.PupilRepository
	teacherRepo repository.TeacherRepository
	subjectRepo repository.SubjectRepository
	logger      *zap.Logger
}

func NewTimetableService(
	entryRepo repository.TimeEntryRepository,
	classRepo repository.SchoolClassRepository,
	pupilRepo repository.PupilRepository,
	teacherRepo repository.TeacherRepository,
	subjectRepo repository.SubjectRepository,
	logger *zap.Logger,
) service.TimetableService {
	return &timetableService{
		entryRepo:   entryRepo,
		classRepo:   classRepo,
		pupilRepo:   pupilRepo,
		teacherRepo: teacherRepo,
		subjectRepo: subjectRepo,
		logger:      logger.Named("timetable"),
	}
}

func (s *timetableService) CreateEntry(ctx context.Context, entry models.TimeEntry) (*models.TimeEntry, error) {
	entry.ID = 0
	return s.save(ctx, entry, false)
}

func (s *timetableService) UpdateEntry(ctx context.Context, entry models.TimeEntry) (*models.TimeEntry, error) {
	if entry.ID == 0 {
		return nil, errors.New("time entry id is required for update")
	}

	stored, err := s.entryRepo.GetByID(ctx, entry.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, service.ErrEntryNotFound
	}
	return s.save(ctx, entry, true)
}

// save проверяет и сохраняет запись внутри блокировки слота (day, session):
// между чтением слота и записью другие изменения этого слота невозможны.
func (s *timetableService) save(ctx context.Context, entry models.TimeEntry, isUpdate bool) (*models.TimeEntry, error) {
	if entry.Group == "" {
		entry.Group = models.GroupAll
	}
	if err := timetable.CheckSession(entry.Session); err != nil {
		return nil, err
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, entry); err != nil {
		return nil, err
	}

	log := s.logger.With(
		zap.String("day", string(entry.Day)),
		zap.Int("session", entry.Session),
		zap.Int64("school_class_id", entry.SchoolClassID),
		zap.String("group", string(entry.Group)),
	)

	var saved models.TimeEntry
	err := s.entryRepo.WithinSlot(ctx, entry.Day, entry.Session, func(slot repository.SlotStore) error {
		existing, err := slot.List(ctx)
		if err != nil {
			return err
		}

		filled, err := timetable.Validate(entry, existing)
		if err != nil {
			return err
		}

		if isUpdate {
			err = slot.Update(ctx, &filled)
		} else {
			err = slot.Insert(ctx, &filled)
		}
		if err != nil {
			if errors.Is(err, repository.ErrUniqueViolation) {
				return &timetable.PersistenceError{Entry: filled, Err: err}
			}
			// Запись удалили между GetByID и захватом слота
			if errors.Is(err, repository.ErrNotFound) {
				return service.ErrEntryNotFound
			}
			return err
		}

		saved = filled
		return nil
	})
	if err != nil {
		var conflict *timetable.ConflictError
		if errors.As(err, &conflict) || errors.Is(err, timetable.ErrPersistenceConflict) || errors.Is(err, service.ErrEntryNotFound) {
			log.Info("time entry rejected", zap.Error(err))
		} else {
			log.Error("failed to save time entry", zap.Error(err))
		}
		return nil, err
	}

	log.Info("time entry saved", zap.Int64("id", saved.ID), zap.Bool("update", isUpdate))
	return &saved, nil
}

func (s *timetableService) checkReferences(ctx context.Context, entry models.TimeEntry) error {
	class, err := s.classRepo.GetByID(ctx, entry.SchoolClassID)
	if err != nil {
		return err
	}
	if class == nil {
		return service.ErrClassNotFound
	}

	teacher, err := s.teacherRepo.GetByID(ctx, entry.TeacherID)
	if err != nil {
		return err
	}
	if teacher == nil {
		return service.ErrTeacherNotFound
	}

	subject, err := s.subjectRepo.GetByID(ctx, entry.SubjectID)
	if err != nil {
		return err
	}
	if subject == nil {
		return service.ErrSubjectNotFound
	}
	return nil
}

func (s *timetableService) DeleteEntry(ctx context.Context, id int64) error {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry == nil {
		return service.ErrEntryNotFound
	}

	if err := s.entryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete time entry %d: %w", id, err)
	}
	s.logger.Info("time entry deleted", zap.Int64("id", id))
	return nil
}

func (s *timetableService) GetEntry(ctx context.Context, id int64) (*models.TimeEntry, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, service.ErrEntryNotFound
	}

	filled, err := timetable.FillTimes(*entry)
	if err != nil {
		return nil, err
	}
	return &filled, nil
}

// PupilNow отвечает, какие уроки идут сейчас у найденных учеников.
// now должен быть в часовом поясе школы.
func (s *timetableService) PupilNow(ctx context.Context, query string, now time.Time) (*models.PupilNowReport, error) {
	query = strings.TrimSpace(query)
	report := &models.PupilNowReport{Query: query, Now: now}

	day, ok := models.DayFromWeekday(now.Weekday())
	if !ok {
		report.Status = models.PupilNowWeekend
		return report, nil
	}
	report.Day = day

	session, ok := timetable.CurrentSession(now)
	if !ok {
		report.Status = models.PupilNowNoSession
		return report, nil
	}
	report.Session = session

	if query == "" {
		report.Status = models.PupilNowEmptyQuery
		return report, nil
	}

	pupils, err := s.pupilRepo.Search(ctx, query, SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search pupils: %w", err)
	}
	if len(pupils) == 0 {
		report.Status = models.PupilNowNoPupils
		return report, nil
	}

	// У учеников одного класса одинаковые уроки
	byClass := make(map[int64][]models.TimeEntry)
	for _, pupil := range pupils {
		entries, cached := byClass[pupil.SchoolClassID]
		if !cached {
			entries, err = s.entryRepo.ListByClassDaySession(ctx, pupil.SchoolClassID, day, session)
			if err != nil {
				return nil, fmt.Errorf("list entries for class %d: %w", pupil.SchoolClassID, err)
			}
			if entries, err = fillAll(entries); err != nil {
				return nil, err
			}
			byClass[pupil.SchoolClassID] = entries
		}

		report.Results = append(report.Results, models.PupilSchedule{Pupil: pupil, Entries: entries})
	}

	report.Status = models.PupilNowFound
	return report, nil
}

// ClassAt возвращает уроки класса, идущие в день day во время at.
// Интервал урока полуоткрытый: start <= at < end.
func (s *timetableService) ClassAt(ctx context.Context, classID int64, day models.Day, at time.Time) ([]models.TimeEntry, error) {
	entries, err := s.ClassDay(ctx, classID, day)
	if err != nil {
		return nil, err
	}

	tod := timetable.TimeOfDay(at)
	var current []models.TimeEntry
	for _, e := range entries {
		if !tod.Before(*e.StartTime) && tod.Before(*e.EndTime) {
			current = append(current, e)
		}
	}
	return current, nil
}

func (s *timetableService) ClassDay(ctx context.Context, classID int64, day models.Day) ([]models.TimeEntry, error) {
	if !day.Valid() {
		return nil, fmt.Errorf("invalid day %q", day)
	}

	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, service.ErrClassNotFound
	}

	entries, err := s.entryRepo.ListByClassDay(ctx, classID, day)
	if err != nil {
		return nil, err
	}

	entries, err = fillAll(entries)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Session != entries[j].Session {
			return entries[i].Session < entries[j].Session
		}
		return entries[i].Group < entries[j].Group
	})
	return entries, nil
}

// fillAll подставляет вычисленное время там, где ручного нет
func fillAll(entries []models.TimeEntry) ([]models.TimeEntry, error) {
	filled := make([]models.TimeEntry, 0, len(entries))
	for _, e := range entries {
		f, err := timetable.FillTimes(e)
		if err != nil {
			return nil, err
		}
		filled = append(filled, f)
	}
	return filled, nil
}
