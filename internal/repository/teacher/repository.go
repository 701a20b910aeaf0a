package teacher

import (
	"context"
	"database/sql"
	"errors"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/repository"

	"github.com/jmoiron/sqlx"
)

type teacherRepository struct {
	db *sqlx.DB
}

func NewTeacherRepository(db *sqlx.DB) repository.TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO timetable.teachers (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	return r.db.QueryRowxContext(ctx, query, teacher.FirstName, teacher.LastName).Scan(&teacher.ID, &teacher.CreatedAt)
}

func (r *teacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher := &models.Teacher{}
	err := r.db.GetContext(ctx, teacher, `SELECT id, first_name, last_name, created_at FROM timetable.teachers WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return teacher, nil
}

func (r *teacherRepository) GetAll(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	err := r.db.SelectContext(ctx, &teachers, `
		SELECT id, first_name, last_name, created_at
		FROM timetable.teachers
		ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, err
	}
	return teachers, nil
}
