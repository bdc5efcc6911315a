package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/repository"
)

// HandSignService serves the sorted label vocabulary with a cache-aside layer.
type HandSignService struct {
	repo  *repository.HandSignRepo
	cache *CacheService
}

func NewHandSignService(repo *repository.HandSignRepo, cache *CacheService) *HandSignService {
	return &HandSignService{repo: repo, cache: cache}
}

// List returns every hand-sign name, lexicographically ascending.
func (s *HandSignService) List(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		if data, err := s.cache.GetHandSigns(ctx); err == nil && data != nil {
			var names []string
			if err := json.Unmarshal(data, &names); err == nil {
				return names, nil
			}
		}
	}

	names, err := s.repo.ListNames(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetHandSigns(ctx, names); err != nil {
			log.Warn().Err(err).Msg("cache: set handsigns failed")
		}
	}
	return names, nil
}
