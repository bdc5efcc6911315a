package service

import (
	"context"
	"encoding/json"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/model"
)

// ResultCounter counts a user's recorded answers.
type ResultCounter interface {
	CountByUser(ctx context.Context, userID int) (int, error)
}

// VideoCounter counts the validation clips.
type VideoCounter interface {
	Count(ctx context.Context) (int, error)
}

// ProgressService computes per-user completion counts with a short-lived
// cache-aside layer.
type ProgressService struct {
	results ResultCounter
	videos  VideoCounter
	cache   *CacheService
}

func NewProgressService(results ResultCounter, videos VideoCounter, cache *CacheService) *ProgressService {
	return &ProgressService{results: results, videos: videos, cache: cache}
}

// Progress returns how many videos the user has answered out of the total.
func (s *ProgressService) Progress(ctx context.Context, userID int) (*model.ProgressResponse, error) {
	if s.cache != nil {
		if data, err := s.cache.GetProgress(ctx, userID); err == nil && data != nil {
			var resp model.ProgressResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	completed, err := s.results.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.videos.Count(ctx)
	if err != nil {
		return nil, err
	}

	resp := &model.ProgressResponse{
		Completed:  completed,
		Total:      total,
		Percentage: CompletionPercentage(completed, total),
	}

	if s.cache != nil {
		if err := s.cache.SetProgress(ctx, userID, resp); err != nil {
			log.Warn().Err(err).Int("userId", userID).Msg("cache: set progress failed")
		}
	}
	return resp, nil
}

// CompletionPercentage is round(completed/total*100), or 0 when there are no
// videos at all.
func CompletionPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
