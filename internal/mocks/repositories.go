package mocks

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ChangeTeam(ctx context.Context, memberID int64, teamID *int64) error {
	args := m.Called(ctx, memberID, teamID)
	return args.Error(0)
}

func (m *MockMemberRepository) FindAll(ctx context.Context) ([]*domain.Member, error) {
	args := m.Called(ctx)
	return membersResult(args)
}

func (m *MockMemberRepository) FindByUsername(ctx context.Context, username string) ([]*domain.Member, error) {
	args := m.Called(ctx, username)
	return membersResult(args)
}

func (m *MockMemberRepository) ListByTeamID(ctx context.Context, teamID int64) ([]*domain.Member, error) {
	args := m.Called(ctx, teamID)
	return membersResult(args)
}

func (m *MockMemberRepository) ListByTeamName(ctx context.Context, teamName string) ([]*domain.Member, error) {
	args := m.Called(ctx, teamName)
	return membersResult(args)
}

func (m *MockMemberRepository) Search(ctx context.Context, criteria domain.SearchCriteria, orders []domain.Order, page domain.Page) ([]*domain.MemberTeamRow, error) {
	args := m.Called(ctx, criteria, orders, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MemberTeamRow), args.Error(1)
}

func (m *MockMemberRepository) FindOne(ctx context.Context, criteria domain.SearchCriteria) (*domain.MemberTeamRow, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberTeamRow), args.Error(1)
}

func (m *MockMemberRepository) Usernames(ctx context.Context, criteria domain.SearchCriteria) ([]*string, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*string), args.Error(1)
}

func (m *MockMemberRepository) BulkUpdateUsername(ctx context.Context, belowAge int, username string) (int64, error) {
	args := m.Called(ctx, belowAge, username)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberRepository) BulkIncrementAge(ctx context.Context, delta int) (int64, error) {
	args := m.Called(ctx, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberRepository) BulkDelete(ctx context.Context, aboveAge int) (int64, error) {
	args := m.Called(ctx, aboveAge)
	return args.Get(0).(int64), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetAgeSummary(ctx context.Context) (*domain.AgeSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgeSummary), args.Error(1)
}

func (m *MockStatsRepository) GetAverageAgeByTeam(ctx context.Context) ([]*domain.TeamAgeStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamAgeStat), args.Error(1)
}

func membersResult(args mock.Arguments) ([]*domain.Member, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Member), args.Error(1)
}
