package repository

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
)

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id int64) (*domain.Member, error)
	ChangeTeam(ctx context.Context, memberID int64, teamID *int64) error
	FindAll(ctx context.Context) ([]*domain.Member, error)
	FindByUsername(ctx context.Context, username string) ([]*domain.Member, error)
	ListByTeamID(ctx context.Context, teamID int64) ([]*domain.Member, error)
	ListByTeamName(ctx context.Context, teamName string) ([]*domain.Member, error)

	Search(ctx context.Context, criteria domain.SearchCriteria, orders []domain.Order, page domain.Page) ([]*domain.MemberTeamRow, error)
	FindOne(ctx context.Context, criteria domain.SearchCriteria) (*domain.MemberTeamRow, error)
	Usernames(ctx context.Context, criteria domain.SearchCriteria) ([]*string, error)

	// Массовые операции выполняются одним запросом и не проходят через кэш.
	BulkUpdateUsername(ctx context.Context, belowAge int, username string) (int64, error)
	BulkIncrementAge(ctx context.Context, delta int) (int64, error)
	BulkDelete(ctx context.Context, aboveAge int) (int64, error)
}
