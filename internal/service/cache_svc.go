package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache TTLs. The sign vocabulary only changes when the seed bundle changes,
// so it can sit in cache for a while; progress changes with every submission
// and is invalidated explicitly, the TTL is just a backstop.
const (
	HandSignCacheTTL = 10 * time.Minute
	ProgressCacheTTL = 30 * time.Second
)

// CacheService provides a Redis cache-aside layer for the hand-sign list and
// per-user progress.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Str("url", redisURL).Msg("redis: invalid URL, caching disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{}
	}

	log.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetHandSigns retrieves the cached label list. Returns nil if not cached or
// cache is disabled.
func (c *CacheService) GetHandSigns(ctx context.Context) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, handSignKey()).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetHandSigns stores the label list in cache.
func (c *CacheService) SetHandSigns(ctx context.Context, names []string) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, handSignKey(), b, HandSignCacheTTL).Err()
}

// InvalidateHandSigns removes the label list from cache (called after seeding
// loads the vocabulary).
func (c *CacheService) InvalidateHandSigns(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, handSignKey()).Err()
}

// GetProgress retrieves a user's cached progress response. Returns nil if not
// cached or cache is disabled.
func (c *CacheService) GetProgress(ctx context.Context, userID int) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, progressKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetProgress stores a user's progress response in cache.
func (c *CacheService) SetProgress(ctx context.Context, userID int, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, progressKey(userID), b, ProgressCacheTTL).Err()
}

// InvalidateProgress removes a user's progress from cache (called after a
// submission changes their completed count).
func (c *CacheService) InvalidateProgress(ctx context.Context, userID int) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, progressKey(userID)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func handSignKey() string {
	return "handsigns:all"
}

func progressKey(userID int) string {
	return fmt.Sprintf("progress:%d", userID)
}
