package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/model"
)

// ResultStore is the persistence surface the submission flow needs.
type ResultStore interface {
	Upsert(ctx context.Context, userID int, videoID, selectedSign string) (*model.ValidationResult, error)
}

// SubmitService records validation answers. No referential check is made
// between the submitted videoId and the videos table: a submission racing the
// seeding routine is accepted as-is.
type SubmitService struct {
	repo  ResultStore
	cache *CacheService
}

func NewSubmitService(repo ResultStore, cache *CacheService) *SubmitService {
	return &SubmitService{repo: repo, cache: cache}
}

// Submit upserts the user's answer for a video and returns the stored row.
// Resubmitting the same (user, video) pair overwrites the previous answer.
func (s *SubmitService) Submit(ctx context.Context, req model.SubmitRequest) (*model.ValidationResult, error) {
	res, err := s.repo.Upsert(ctx, req.UserID, req.VideoID, req.SelectedSign)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateProgress(ctx, req.UserID); err != nil {
			log.Warn().Err(err).Int("userId", req.UserID).Msg("cache: invalidate progress failed")
		}
	}
	return res, nil
}
