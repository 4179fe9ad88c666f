package repository

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
)

type StatsRepository interface {
	GetAgeSummary(ctx context.Context) (*domain.AgeSummary, error)
	GetAverageAgeByTeam(ctx context.Context) ([]*domain.TeamAgeStat, error)
}
