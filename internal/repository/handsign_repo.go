package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HandSignRepo struct {
	pool *pgxpool.Pool
}

func NewHandSignRepo(pool *pgxpool.Pool) *HandSignRepo {
	return &HandSignRepo{pool: pool}
}

// ListNames returns every hand-sign label sorted lexicographically ascending.
func (r *HandSignRepo) ListNames(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT name FROM handsigns ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Count returns the number of labels. Seeding uses it to decide whether the
// label step should run at all.
func (r *HandSignRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM handsigns`).Scan(&n)
	return n, err
}

// InsertBatch inserts a batch of label names, skipping any that already exist.
func (r *HandSignRepo) InsertBatch(ctx context.Context, names []string) error {
	for _, name := range names {
		_, err := r.pool.Exec(ctx, `
			INSERT INTO handsigns (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return err
		}
	}
	return nil
}
