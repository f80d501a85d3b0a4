package database

import (
	"context"
	"database/sql"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS positions (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		department TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		requirements TEXT[] NOT NULL DEFAULT '{}',
		status TEXT NOT NULL DEFAULT 'draft',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS candidates (
		id UUID PRIMARY KEY,
		position_id UUID NOT NULL REFERENCES positions (id) ON DELETE CASCADE,
		import_seq BIGSERIAL,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		score_admin DOUBLE PRECISION NOT NULL DEFAULT 0,
		score_interview DOUBLE PRECISION NOT NULL DEFAULT 0,
		score_test DOUBLE PRECISION NOT NULL DEFAULT 0,
		experience_years DOUBLE PRECISION NOT NULL DEFAULT 0,
		final_score DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_position_seq ON candidates (position_id, import_seq)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		payload JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
