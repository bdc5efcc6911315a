package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/model"
)

type ResultRepo struct {
	pool *pgxpool.Pool
}

func NewResultRepo(pool *pgxpool.Pool) *ResultRepo {
	return &ResultRepo{pool: pool}
}

// Upsert records a user's answer for a video. If the (user, video) pair
// already has an answer, the selected sign is overwritten and the timestamp
// refreshed. Returns the stored row.
func (r *ResultRepo) Upsert(ctx context.Context, userID int, videoID, selectedSign string) (*model.ValidationResult, error) {
	var res model.ValidationResult
	err := r.pool.QueryRow(ctx, `
		INSERT INTO validation_results (user_id, video_id, selected_sign, submitted_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, video_id) DO UPDATE
		SET selected_sign = EXCLUDED.selected_sign, submitted_at = NOW()
		RETURNING user_id, video_id, selected_sign, submitted_at`,
		userID, videoID, selectedSign).Scan(
		&res.UserID, &res.VideoID, &res.SelectedSign, &res.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CountByUser returns how many videos the given user has answered.
func (r *ResultRepo) CountByUser(ctx context.Context, userID int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM validation_results WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}
