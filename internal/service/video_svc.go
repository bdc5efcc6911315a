package service

import (
	"context"

	"github.com/Palenzo/Backend-HCI-VeRf/internal/model"
	"github.com/Palenzo/Backend-HCI-VeRf/internal/repository"
)

// VideoService serves the validation clip listing.
type VideoService struct {
	repo *repository.VideoRepo
}

func NewVideoService(repo *repository.VideoRepo) *VideoService {
	return &VideoService{repo: repo}
}

// List returns every video as (id, path, correctSign).
func (s *VideoService) List(ctx context.Context) ([]model.Video, error) {
	return s.repo.ListAll(ctx)
}
