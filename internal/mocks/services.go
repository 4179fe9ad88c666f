package mocks

import (
	"context"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) CreateMember(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	args := m.Called(ctx, member)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) ChangeTeam(ctx context.Context, memberID int64, teamID *int64) (*domain.Member, error) {
	args := m.Called(ctx, memberID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) FindAll(ctx context.Context) ([]*domain.Member, error) {
	args := m.Called(ctx)
	return membersResult(args)
}

func (m *MockMemberService) FindByUsername(ctx context.Context, username string) ([]*domain.Member, error) {
	args := m.Called(ctx, username)
	return membersResult(args)
}

func (m *MockMemberService) ListByTeamName(ctx context.Context, teamName string) ([]*domain.Member, error) {
	args := m.Called(ctx, teamName)
	return membersResult(args)
}

func (m *MockMemberService) Search(ctx context.Context, criteria domain.SearchCriteria, orders []domain.Order, page domain.Page) ([]*domain.MemberTeamRow, error) {
	args := m.Called(ctx, criteria, orders, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MemberTeamRow), args.Error(1)
}

func (m *MockMemberService) FindOne(ctx context.Context, criteria domain.SearchCriteria) (*domain.MemberTeamRow, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MemberTeamRow), args.Error(1)
}

func (m *MockMemberService) Usernames(ctx context.Context, criteria domain.SearchCriteria) ([]*string, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*string), args.Error(1)
}

func (m *MockMemberService) BulkUpdateUsername(ctx context.Context, belowAge int, username string) (int64, error) {
	args := m.Called(ctx, belowAge, username)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberService) BulkIncrementAge(ctx context.Context, delta int) (int64, error) {
	args := m.Called(ctx, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberService) BulkDelete(ctx context.Context, aboveAge int) (int64, error) {
	args := m.Called(ctx, aboveAge)
	return args.Get(0).(int64), args.Error(1)
}

type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) CreateTeam(ctx context.Context, name string, members []*domain.Member) (*domain.TeamMembers, error) {
	args := m.Called(ctx, name, members)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMembers), args.Error(1)
}

func (m *MockTeamService) GetTeam(ctx context.Context, name string) (*domain.TeamMembers, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMembers), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetAgeSummary(ctx context.Context) (*domain.AgeSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AgeSummary), args.Error(1)
}

func (m *MockStatsService) GetAverageAgeByTeam(ctx context.Context) ([]*domain.TeamAgeStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamAgeStat), args.Error(1)
}
