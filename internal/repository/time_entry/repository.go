package time_entry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

// Пространство ключей pg_advisory_xact_lock для слотов расписания
const slotLockNamespace = 7301

const selectEntries = `
	SELECT
		te.id, te.day, te.session, te.school_class_id, te.subject_id, te.teacher_id,
		te."group", te.start_time, te.end_time, te.created_at,
		sc.number::text || sc.letter AS class_name,
		s.name AS subject_code,
		t.first_name || ' ' || t.last_name AS teacher_name
	FROM timetable.time_entries te
	JOIN timetable.school_classes sc ON te.school_class_id = sc.id
	JOIN timetable.subjects s ON te.subject_id = s.id
	JOIN timetable.teachers t ON te.teacher_id = t.id
`

type timeEntryRepository struct {
	db *sqlx.DB
}

func NewTimeEntryRepository(db *sqlx.DB) repository.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

func (r *timeEntryRepository) WithinSlot(ctx context.Context, day models.Day, session int, fn func(slot repository.SlotStore) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin slot transaction: %w", err)
	}
	defer tx.Rollback()

	// Блокировка снимается автоматически при commit/rollback
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, slotLockNamespace, slotKey(day, session)); err != nil {
		return fmt.Errorf("lock slot %s/%d: %w", day, session, err)
	}

	if err := fn(&slotStore{tx: tx, day: day, session: session}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return repository.MapError(err)
	}
	return nil
}

func slotKey(day models.Day, session int) int {
	return day.Index()*100 + session
}

func (r *timeEntryRepository) GetByID(ctx context.Context, id int64) (*models.TimeEntry, error) {
	entry := &models.TimeEntry{}
	err := r.db.GetContext(ctx, entry, selectEntries+` WHERE te.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

func (r *timeEntryRepository) ListByClassDay(ctx context.Context, classID int64, day models.Day) ([]models.TimeEntry, error) {
	query := selectEntries + `
		WHERE te.school_class_id = $1 AND te.day = $2
		ORDER BY te.session ASC, te."group" ASC
	`

	var entries []models.TimeEntry
	if err := r.db.SelectContext(ctx, &entries, query, classID, day); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *timeEntryRepository) ListByClassDaySession(ctx context.Context, classID int64, day models.Day, session int) ([]models.TimeEntry, error) {
	query := selectEntries + `
		WHERE te.school_class_id = $1 AND te.day = $2 AND te.session = $3
		ORDER BY te."group" ASC
	`

	var entries []models.TimeEntry
	if err := r.db.SelectContext(ctx, &entries, query, classID, day, session); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *timeEntryRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM timetable.time_entries WHERE id = $1`, id)
	return err
}

type slotStore struct {
	tx      *sqlx.Tx
	day     models.Day
	session int
}

func (s *slotStore) List(ctx context.Context) ([]models.TimeEntry, error) {
	query := selectEntries + `
		WHERE te.day = $1 AND te.session = $2
		ORDER BY te.school_class_id ASC, te."group" ASC
	`

	var entries []models.TimeEntry
	if err := s.tx.SelectContext(ctx, &entries, query, s.day, s.session); err != nil {
		return nil, fmt.Errorf("list slot %s/%d: %w", s.day, s.session, err)
	}
	return entries, nil
}

func (s *slotStore) Insert(ctx context.Context, entry *models.TimeEntry) error {
	if err := s.checkSlot(entry); err != nil {
		return err
	}

	query := `
		INSERT INTO timetable.time_entries
		(day, session, school_class_id, subject_id, teacher_id, "group", start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := s.tx.QueryRowxContext(
		ctx,
		query,
		entry.Day,
		entry.Session,
		entry.SchoolClassID,
		entry.SubjectID,
		entry.TeacherID,
		entry.Group,
		formatClock(entry.StartTime),
		formatClock(entry.EndTime),
	).Scan(&entry.ID, &entry.CreatedAt)
	return repository.MapError(err)
}

func (s *slotStore) Update(ctx context.Context, entry *models.TimeEntry) error {
	if err := s.checkSlot(entry); err != nil {
		return err
	}

	query := `
		UPDATE timetable.time_entries
		SET day = $1, session = $2, school_class_id = $3, subject_id = $4,
		    teacher_id = $5, "group" = $6, start_time = $7, end_time = $8
		WHERE id = $9
	`
	result, err := s.tx.ExecContext(
		ctx,
		query,
		entry.Day,
		entry.Session,
		entry.SchoolClassID,
		entry.SubjectID,
		entry.TeacherID,
		entry.Group,
		formatClock(entry.StartTime),
		formatClock(entry.EndTime),
		entry.ID,
	)
	if err != nil {
		return repository.MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("time entry %d: %w", entry.ID, repository.ErrNotFound)
	}
	return nil
}

func (s *slotStore) checkSlot(entry *models.TimeEntry) error {
	if entry.Day != s.day || entry.Session != s.session {
		return fmt.Errorf("entry for %s/%d written inside slot %s/%d", entry.Day, entry.Session, s.day, s.session)
	}
	return nil
}

// formatClock пишет время как "15:04:05", дата опорного значения в колонку TIME не попадает
func formatClock(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format("15:04:05")
}
