package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

// ListAll returns every video projected to (id, path, correctSign), in
// store-native order.
func (r *VideoRepo) ListAll(ctx context.Context) ([]model.Video, error) {
	rows, err := r.pool.Query(ctx, `SELECT video_id, path, correct_sign FROM videos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []model.Video{}
	for rows.Next() {
		var v model.Video
		if err := rows.Scan(&v.ID, &v.Path, &v.CorrectSign); err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// Count returns the total number of videos.
func (r *VideoRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM videos`).Scan(&n)
	return n, err
}

// UpsertBatch upserts a batch of seed entries keyed by video_id in a single
// pipelined round trip. Returns how many rows were newly inserted (as opposed
// to updated in place).
func (r *VideoRepo) UpsertBatch(ctx context.Context, entries []model.SeedVideo) (inserted int, err error) {
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`
			INSERT INTO videos (video_id, path, correct_sign)
			VALUES ($1, $2, $3)
			ON CONFLICT (video_id) DO UPDATE
			SET path = EXCLUDED.path, correct_sign = EXCLUDED.correct_sign
			RETURNING (xmax = 0) AS newly_inserted`,
			e.Key(), e.Path, e.CorrectSign)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range entries {
		var newlyInserted bool
		if scanErr := results.QueryRow().Scan(&newlyInserted); scanErr != nil {
			return inserted, scanErr
		}
		if newlyInserted {
			inserted++
		}
	}
	return inserted, nil
}
