package pupil

import (
	"context"
	"school-timetable-bot/internal/models"
	"school-timetable-bot/internal/repository"
	"strings"

	"github.com/jmoiron/sqlx"
)

const selectPupils = `
	SELECT
		p.id, p.first_name, p.last_name, p.school_class_id, p."group", p.created_at,
		sc.number::text || sc.letter AS class_name
	FROM timetable.pupils p
	JOIN timetable.school_classes sc ON p.school_class_id = sc.id
`

type pupilRepository struct {
	db *sqlx.DB
}

func NewPupilRepository(db *sqlx.DB) repository.PupilRepository {
	return &pupilRepository{db: db}
}

func (r *pupilRepository) Create(ctx context.Context, pupil *models.Pupil) error {
	query := `
		INSERT INTO timetable.pupils (first_name, last_name, school_class_id, "group")
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowxContext(
		ctx,
		query,
		pupil.FirstName,
		pupil.LastName,
		pupil.SchoolClassID,
		pupil.Group,
	).Scan(&pupil.ID, &pupil.CreatedAt)
}

func (r *pupilRepository) GetByClass(ctx context.Context, classID int64) ([]models.Pupil, error) {
	var pupils []models.Pupil
	query := selectPupils + ` WHERE p.school_class_id = $1 ORDER BY p.last_name, p.first_name`
	if err := r.db.SelectContext(ctx, &pupils, query, classID); err != nil {
		return nil, err
	}
	return pupils, nil
}

// Search ищет вхождение всей строки в имя или фамилию, а также первого слова
// в имя и последнего слова в фамилию ("Иван Петров").
func (r *pupilRepository) Search(ctx context.Context, query string, limit int) ([]models.Pupil, error) {
	words := strings.Fields(query)
	if len(words) == 0 {
		return nil, nil
	}

	whole := likePattern(strings.Join(words, " "))
	first := likePattern(words[0])
	last := likePattern(words[len(words)-1])

	sqlQuery := selectPupils + `
		WHERE p.first_name ILIKE $1 OR p.last_name ILIKE $1
		   OR p.first_name ILIKE $2 OR p.last_name ILIKE $3
		ORDER BY sc.number, sc.letter, p.last_name, p.first_name
		LIMIT $4
	`

	var pupils []models.Pupil
	if err := r.db.SelectContext(ctx, &pupils, sqlQuery, whole, first, last, limit); err != nil {
		return nil, err
	}
	return pupils, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
