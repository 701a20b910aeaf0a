package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

var migrations = []struct {
	name  string
	query string
}{
	{
		name:  "create schema",
		query: `CREATE SCHEMA IF NOT EXISTS timetable`,
	},
	{
		name: "create school_classes",
		query: `
			CREATE TABLE IF NOT EXISTS timetable.school_classes (
				id         BIGSERIAL PRIMARY KEY,
				number     SMALLINT NOT NULL CHECK (number BETWEEN 5 AND 11),
				letter     VARCHAR(1) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				UNIQUE (number, letter)
			)`,
	},
	{
		name: "create pupils",
		query: `
			CREATE TABLE IF NOT EXISTS timetable.pupils (
				id              BIGSERIAL PRIMARY KEY,
				first_name      VARCHAR(100) NOT NULL,
				last_name       VARCHAR(100) NOT NULL,
				school_class_id BIGINT NOT NULL REFERENCES timetable.school_classes(id) ON DELETE CASCADE,
				"group"         VARCHAR(1) CHECK ("group" IN ('1', '2')),
				created_at      TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
	},
	{
		name: "create teachers",
		query: `
			CREATE TABLE IF NOT EXISTS timetable.teachers (
				id         BIGSERIAL PRIMARY KEY,
				first_name VARCHAR(50) NOT NULL,
				last_name  VARCHAR(50) NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
	},
	{
		name: "create subjects",
		query: `
			CREATE TABLE IF NOT EXISTS timetable.subjects (
				id   BIGSERIAL PRIMARY KEY,
				name VARCHAR(50) NOT NULL UNIQUE CHECK (name IN (
					'math', 'physics', 'chemistry', 'biology',
					'english', 'history', 'geography', 'it'
				))
			)`,
	},
	{
		name: "fill subjects",
		query: `
			INSERT INTO timetable.subjects (name)
			VALUES ('math'), ('physics'), ('chemistry'), ('biology'),
			       ('english'), ('history'), ('geography'), ('it')
			ON CONFLICT (name) DO NOTHING`,
	},
	{
		name: "create time_entries",
		query: `
			CREATE TABLE IF NOT EXISTS timetable.time_entries (
				id              BIGSERIAL PRIMARY KEY,
				day             VARCHAR(3) NOT NULL CHECK (day IN ('mon', 'tue', 'wed', 'thu', 'fri')),
				session         SMALLINT NOT NULL CHECK (session BETWEEN 1 AND 8),
				school_class_id BIGINT NOT NULL REFERENCES timetable.school_classes(id) ON DELETE CASCADE,
				subject_id      BIGINT NOT NULL REFERENCES timetable.subjects(id) ON DELETE RESTRICT,
				teacher_id      BIGINT NOT NULL REFERENCES timetable.teachers(id) ON DELETE RESTRICT,
				"group"         VARCHAR(3) NOT NULL DEFAULT 'all' CHECK ("group" IN ('1', '2', 'all')),
				start_time      TIME,
				end_time        TIME,
				created_at      TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				CONSTRAINT unique_entry_per_class_day_session_group
					UNIQUE (day, session, school_class_id, "group")
			)`,
	},
	{
		name:  "index time_entries by slot",
		query: `CREATE INDEX IF NOT EXISTS time_entries_slot_idx ON timetable.time_entries (day, session)`,
	},
}

// RunMigrations создаёт схему, если её ещё нет. Все шаги идемпотентны.
func RunMigrations(ctx context.Context, db *sqlx.DB, logger *zap.Logger) error {
	logger.Info("running database migrations")

	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m.query); err != nil {
			logger.Error("migration failed", zap.String("migration", m.name), zap.Error(err))
			return fmt.Errorf("migration %q: %w", m.name, err)
		}
	}

	logger.Info("database migrations completed", zap.Int("steps", len(migrations)))
	return nil
}
