package service

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, name string, members []*domain.Member) (*domain.TeamMembers, error)
	GetTeam(ctx context.Context, name string) (*domain.TeamMembers, error)
}
