package timetable_service

import (
	"context"
	"fmt"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/repository"
	"sort"
	"strings"
	"sync"
)

// ── in-memory репозитории для тестов ──

type mockEntryRepo struct {
	mu        sync.Mutex
	entries   map[int64]models.TimeEntry
	nextID    int64
	slotLocks map[string]*sync.Mutex
	classes   *mockClassRepo

	// staleList заставляет List вернуть пустой слот, имитируя проверку без блокировки
	staleList bool
	// beforeSlot вызывается перед захватом слота, между GetByID и записью
	beforeSlot  func()
	slotCalls   int
	deleteCalls int
}

func newMockEntryRepo(classes *mockClassRepo) *mockEntryRepo {
	return &mockEntryRepo{
		entries:   make(map[int64]models.TimeEntry),
		slotLocks: make(map[string]*sync.Mutex),
		classes:   classes,
	}
}

func (r *mockEntryRepo) slotLock(day models.Day, session int) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := fmt.Sprintf("%s/%d", day, session)
	lock, ok := r.slotLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		r.slotLocks[key] = lock
	}
	r.slotCalls++
	return lock
}

func (r *mockEntryRepo) WithinSlot(ctx context.Context, day models.Day, session int, fn func(slot repository.SlotStore) error) error {
	if r.beforeSlot != nil {
		r.beforeSlot()
	}

	lock := r.slotLock(day, session)
	lock.Lock()
	defer lock.Unlock()

	return fn(&mockSlot{repo: r, day: day, session: session})
}

func (r *mockEntryRepo) withJoins(e models.TimeEntry) models.TimeEntry {
	if class, ok := r.classes.classes[e.SchoolClassID]; ok {
		e.ClassName = class.String()
	}
	return e
}

func (r *mockEntryRepo) add(e models.TimeEntry) models.TimeEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	e.ID = r.nextID
	r.entries[e.ID] = e
	return e
}

func (r *mockEntryRepo) GetByID(ctx context.Context, id int64) (*models.TimeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, nil
	}
	e = r.withJoins(e)
	return &e, nil
}

func (r *mockEntryRepo) filter(match func(models.TimeEntry) bool) []models.TimeEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.TimeEntry
	for _, e := range r.entries {
		if match(e) {
			out = append(out, r.withJoins(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *mockEntryRepo) ListByClassDay(ctx context.Context, classID int64, day models.Day) ([]models.TimeEntry, error) {
	return r.filter(func(e models.TimeEntry) bool {
		return e.SchoolClassID == classID && e.Day == day
	}), nil
}

func (r *mockEntryRepo) ListByClassDaySession(ctx context.Context, classID int64, day models.Day, session int) ([]models.TimeEntry, error) {
	return r.filter(func(e models.TimeEntry) bool {
		return e.SchoolClassID == classID && e.Day == day && e.Session == session
	}), nil
}

func (r *mockEntryRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deleteCalls++
	delete(r.entries, id)
	return nil
}

type mockSlot struct {
	repo    *mockEntryRepo
	day     models.Day
	session int
}

func (s *mockSlot) List(ctx context.Context) ([]models.TimeEntry, error) {
	if s.repo.staleList {
		return nil, nil
	}
	return s.repo.filter(func(e models.TimeEntry) bool {
		return e.Day == s.day && e.Session == s.session
	}), nil
}

func (s *mockSlot) unique(entry *models.TimeEntry) error {
	for _, e := range s.repo.entries {
		if e.ID != entry.ID && e.Day == entry.Day && e.Session == entry.Session &&
			e.SchoolClassID == entry.SchoolClassID && e.Group == entry.Group {
			return fmt.Errorf("%w: unique_entry_per_class_day_session_group", repository.ErrUniqueViolation)
		}
	}
	return nil
}

func (s *mockSlot) Insert(ctx context.Context, entry *models.TimeEntry) error {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()

	if err := s.unique(entry); err != nil {
		return err
	}
	s.repo.nextID++
	entry.ID = s.repo.nextID
	s.repo.entries[entry.ID] = *entry
	return nil
}

func (s *mockSlot) Update(ctx context.Context, entry *models.TimeEntry) error {
	s.repo.mu.Lock()
	defer s.repo.mu.Unlock()

	if _, ok := s.repo.entries[entry.ID]; !ok {
		return fmt.Errorf("time entry %d: %w", entry.ID, repository.ErrNotFound)
	}
	if err := s.unique(entry); err != nil {
		return err
	}
	s.repo.entries[entry.ID] = *entry
	return nil
}

type mockClassRepo struct {
	classes map[int64]models.SchoolClass
}

func (r *mockClassRepo) Create(ctx context.Context, class *models.SchoolClass) error {
	class.ID = int64(len(r.classes) + 1)
	r.classes[class.ID] = *class
	return nil
}

func (r *mockClassRepo) GetByID(ctx context.Context, id int64) (*models.SchoolClass, error) {
	class, ok := r.classes[id]
	if !ok {
		return nil, nil
	}
	return &class, nil
}

func (r *mockClassRepo) GetByNumberLetter(ctx context.Context, number int, letter string) (*models.SchoolClass, error) {
	for _, class := range r.classes {
		if class.Number == number && class.Letter == letter {
			c := class
			return &c, nil
		}
	}
	return nil, nil
}

func (r *mockClassRepo) GetAll(ctx context.Context) ([]models.SchoolClass, error) {
	var out []models.SchoolClass
	for _, class := range r.classes {
		out = append(out, class)
	}
	return out, nil
}

func (r *mockClassRepo) Rename(ctx context.Context, id int64, number int, letter string) error {
	class := r.classes[id]
	class.Number, class.Letter = number, letter
	r.classes[id] = class
	return nil
}

type mockTeacherRepo struct {
	teachers map[int64]models.Teacher
}

func (r *mockTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) error {
	teacher.ID = int64(len(r.teachers) + 1)
	r.teachers[teacher.ID] = *teacher
	return nil
}

func (r *mockTeacherRepo) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, ok := r.teachers[id]
	if !ok {
		return nil, nil
	}
	return &teacher, nil
}

func (r *mockTeacherRepo) GetAll(ctx context.Context) ([]models.Teacher, error) {
	var out []models.Teacher
	for _, teacher := range r.teachers {
		out = append(out, teacher)
	}
	return out, nil
}

type mockSubjectRepo struct{}

func (r *mockSubjectRepo) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	if id < 1 || int(id) > len(models.SubjectCodes) {
		return nil, nil
	}
	return &models.Subject{ID: id, Code: models.SubjectCodes[id-1]}, nil
}

func (r *mockSubjectRepo) GetByCode(ctx context.Context, code models.SubjectCode) (*models.Subject, error) {
	for i, c := range models.SubjectCodes {
		if c == code {
			return &models.Subject{ID: int64(i + 1), Code: c}, nil
		}
	}
	return nil, nil
}

func (r *mockSubjectRepo) GetAll(ctx context.Context) ([]models.Subject, error) {
	var out []models.Subject
	for i, c := range models.SubjectCodes {
		out = append(out, models.Subject{ID: int64(i + 1), Code: c})
	}
	return out, nil
}

type mockPupilRepo struct {
	pupils      []models.Pupil
	searchCalls int
}

func (r *mockPupilRepo) Create(ctx context.Context, pupil *models.Pupil) error {
	pupil.ID = int64(len(r.pupils) + 1)
	r.pupils = append(r.pupils, *pupil)
	return nil
}

func (r *mockPupilRepo) GetByClass(ctx context.Context, classID int64) ([]models.Pupil, error) {
	var out []models.Pupil
	for _, p := range r.pupils {
		if p.SchoolClassID == classID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *mockPupilRepo) Search(ctx context.Context, query string, limit int) ([]models.Pupil, error) {
	r.searchCalls++
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil, nil
	}
	whole := strings.Join(words, " ")

	var out []models.Pupil
	for _, p := range r.pupils {
		first, last := strings.ToLower(p.FirstName), strings.ToLower(p.LastName)
		if strings.Contains(first, whole) || strings.Contains(last, whole) ||
			strings.Contains(first, words[0]) || strings.Contains(last, words[len(words)-1]) {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}
