package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateSchema creates the three tables if they do not exist. Safe to run on
// every boot; uniqueness lives in the primary keys (handsigns.name,
// videos.video_id, validation_results (user_id, video_id)).
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS handsigns (
			name TEXT PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS videos (
			video_id     TEXT PRIMARY KEY,
			path         TEXT NOT NULL,
			correct_sign TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS validation_results (
			user_id       INT NOT NULL,
			video_id      TEXT NOT NULL,
			selected_sign TEXT NOT NULL,
			submitted_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, video_id)
		);

		CREATE INDEX IF NOT EXISTS idx_validation_results_user ON validation_results(user_id);
	`)
	return err
}
