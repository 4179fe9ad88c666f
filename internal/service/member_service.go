package service

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
)

type MemberService interface {
	// CreateMember сохраняет участника; команда, если указана, должна существовать
	CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error)

	// GetMember читает участника через кэш
	GetMember(ctx context.Context, id int64) (*domain.Member, error)

	// ChangeTeam переводит участника в другую команду или отвязывает (teamID == nil)
	ChangeTeam(ctx context.Context, memberID int64, teamID *int64) (*domain.Member, error)

	FindAll(ctx context.Context) ([]*domain.Member, error)
	FindByUsername(ctx context.Context, username string) ([]*domain.Member, error)
	ListByTeamName(ctx context.Context, teamName string) ([]*domain.Member, error)

	// Search - динамический поиск по необязательным критериям
	Search(ctx context.Context, criteria domain.SearchCriteria, orders []domain.Order, page domain.Page) ([]*domain.MemberTeamRow, error)
	FindOne(ctx context.Context, criteria domain.SearchCriteria) (*domain.MemberTeamRow, error)
	Usernames(ctx context.Context, criteria domain.SearchCriteria) ([]*string, error)

	// Массовые операции; после каждой кэш участников очищается
	BulkUpdateUsername(ctx context.Context, belowAge int, username string) (int64, error)
	BulkIncrementAge(ctx context.Context, delta int) (int64, error)
	BulkDelete(ctx context.Context, aboveAge int) (int64, error)
}

// MemberCache - кэш участников по id
type MemberCache interface {
	Get(id int64) (*domain.Member, bool)
	Put(member *domain.Member)
	Remove(id int64)
	Purge()
	Len() int
}
