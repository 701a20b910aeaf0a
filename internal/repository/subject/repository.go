package subject

import (
	"context"
	"database/sql"
	"errors"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type subjectRepository struct {
	db *sqlx.DB
}

func NewSubjectRepository(db *sqlx.DB) repository.SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	return r.getOne(ctx, `SELECT id, name FROM timetable.subjects WHERE id = $1`, id)
}

func (r *subjectRepository) GetByCode(ctx context.Context, code models.SubjectCode) (*models.Subject, error) {
	return r.getOne(ctx, `SELECT id, name FROM timetable.subjects WHERE name = $1`, code)
}

func (r *subjectRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.Subject, error) {
	subject := &models.Subject{}
	if err := r.db.GetContext(ctx, subject, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return subject, nil
}

func (r *subjectRepository) GetAll(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := r.db.SelectContext(ctx, &subjects, `SELECT id, name FROM timetable.subjects ORDER BY id`); err != nil {
		return nil, err
	}
	return subjects, nil
}
