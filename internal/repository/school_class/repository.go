package school_class

import (
	"context"
	"database/sql"
	"errors"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type schoolClassRepository struct {
	db *sqlx.DB
}

func NewSchoolClassRepository(db *sqlx.DB) repository.SchoolClassRepository {
	return &schoolClassRepository{db: db}
}

func (r *schoolClassRepository) Create(ctx context.Context, class *models.SchoolClass) error {
	query := `
		INSERT INTO timetable.school_classes (number, letter)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query, class.Number, class.Letter).Scan(&class.ID, &class.CreatedAt)
	return repository.MapError(err)
}

func (r *schoolClassRepository) GetByID(ctx context.Context, id int64) (*models.SchoolClass, error) {
	class := &models.SchoolClass{}
	err := r.db.GetContext(ctx, class, `SELECT id, number, letter, created_at FROM timetable.school_classes WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return class, nil
}

func (r *schoolClassRepository) GetByNumberLetter(ctx context.Context, number int, letter string) (*models.SchoolClass, error) {
	query := `
		SELECT id, number, letter, created_at
		FROM timetable.school_classes
		WHERE number = $1 AND letter = $2
	`

	class := &models.SchoolClass{}
	err := r.db.GetContext(ctx, class, query, number, letter)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return class, nil
}

func (r *schoolClassRepository) GetAll(ctx context.Context) ([]models.SchoolClass, error) {
	var classes []models.SchoolClass
	err := r.db.SelectContext(ctx, &classes, `
		SELECT id, number, letter, created_at
		FROM timetable.school_classes
		ORDER BY number, letter
	`)
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *schoolClassRepository) Rename(ctx context.Context, id int64, number int, letter string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE timetable.school_classes SET number = $1, letter = $2 WHERE id = $3`, number, letter, id)
	return repository.MapError(err)
}
