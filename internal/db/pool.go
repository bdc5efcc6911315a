package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const (
	maxRetries    = 5
	retryInterval = 2 * time.Second
)

// NewPool builds a pgx connection pool for the given URL. Connection checks
// are retried a few times; if the database never answers, the pool is still
// returned with ready=false so the process can keep serving (requests that
// touch the store will fail individually).
func NewPool(ctx context.Context, databaseURL string) (pool *pgxpool.Pool, ready bool, err error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, false, fmt.Errorf("parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = time.Minute

	pool, err = pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, false, fmt.Errorf("create pool: %w", err)
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if pingErr := pool.Ping(ctx); pingErr == nil {
			log.Info().Msg("database connected")
			return pool, true, nil
		} else {
			err = pingErr
		}

		log.Warn().Err(err).Int("attempt", attempt).Int("max", maxRetries).Msg("database connection attempt failed")
		if attempt < maxRetries {
			time.Sleep(retryInterval)
		}
	}

	log.Error().Err(err).Msg("database unreachable at startup, continuing without it")
	return pool, false, nil
}

// AwaitReady polls ping at the given interval and runs onReady once, the
// first time the store answers. Used when the database was down at boot so
// schema creation and seeding still fire without a restart.
func AwaitReady(ctx context.Context, interval time.Duration, ping func(context.Context) error, onReady func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := ping(ctx); err != nil {
				continue
			}
			log.Info().Msg("database connected")
			onReady()
			return
		}
	}
}
