package service

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) GetAgeSummary(ctx context.Context) (*domain.AgeSummary, error) {
	return s.statsRepo.GetAgeSummary(ctx)
}

func (s *statsService) GetAverageAgeByTeam(ctx context.Context) ([]*domain.TeamAgeStat, error) {
	return s.statsRepo.GetAverageAgeByTeam(ctx)
}
