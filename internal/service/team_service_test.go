package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/mocks"
	"github.com/bagdasarian/member-search/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupMockDBForService(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mockDB
}

func txReposOf(teamRepo repository.TeamRepository, memberRepo repository.MemberRepository) TxRepositories {
	return func(tx *sql.Tx) (repository.TeamRepository, repository.MemberRepository) {
		return teamRepo, memberRepo
	}
}

func TestTeamService_CreateTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("успешное создание команды с участниками", func(t *testing.T) {
		db, mockDB := setupMockDBForService(t)
		mockTeamRepo := new(mocks.MockTeamRepository)
		mockMemberRepo := new(mocks.MockMemberRepository)

		service := NewTeamService(db, mockTeamRepo, mockMemberRepo, txReposOf(mockTeamRepo, mockMemberRepo))

		member1 := domain.NewMember("member1", 10)
		member2 := domain.NewMember("member2", 20)

		mockDB.ExpectBegin()
		mockTeamRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Team")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Team).ID = 1
		}).Return(nil).Once()
		var nextID int64
		mockMemberRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Member")).Run(func(args mock.Arguments) {
			nextID++
			args.Get(1).(*domain.Member).ID = nextID
		}).Return(nil).Twice()
		mockDB.ExpectCommit()

		result, err := service.CreateTeam(ctx, "teamA", []*domain.Member{member1, member2})

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Team.ID)
		assert.Equal(t, "teamA", result.Team.Name)
		require.Len(t, result.Members, 2)
		for i, m := range result.Members {
			require.NotNil(t, m.TeamID)
			assert.Equal(t, int64(1), *m.TeamID)
			assert.Equal(t, int64(i+1), m.ID)
		}
		assert.Equal(t, "member1", result.Members[0].Name())
		assert.Equal(t, 20, result.Members[1].Age)
		mockTeamRepo.AssertExpectations(t)
		mockMemberRepo.AssertExpectations(t)
		require.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("ошибка: команда уже существует, транзакция откатывается", func(t *testing.T) {
		db, mockDB := setupMockDBForService(t)
		mockTeamRepo := new(mocks.MockTeamRepository)
		mockMemberRepo := new(mocks.MockMemberRepository)

		service := NewTeamService(db, mockTeamRepo, mockMemberRepo, txReposOf(mockTeamRepo, mockMemberRepo))

		mockDB.ExpectBegin()
		mockTeamRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Team")).Return(domain.ErrTeamExists).Once()
		mockDB.ExpectRollback()

		result, err := service.CreateTeam(ctx, "teamA", []*domain.Member{domain.NewMember("member1", 10)})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrTeamExists))
		mockMemberRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		require.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("ошибка создания участника откатывает команду", func(t *testing.T) {
		db, mockDB := setupMockDBForService(t)
		mockTeamRepo := new(mocks.MockTeamRepository)
		mockMemberRepo := new(mocks.MockMemberRepository)

		service := NewTeamService(db, mockTeamRepo, mockMemberRepo, txReposOf(mockTeamRepo, mockMemberRepo))

		mockDB.ExpectBegin()
		mockTeamRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Team")).Return(nil).Once()
		mockMemberRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Member).ID = 42
		}).Return(nil).Once()
		mockMemberRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("database error")).Once()
		mockDB.ExpectRollback()

		member1 := domain.NewMember("member1", 10)
		member2 := domain.NewMember("member2", 20)

		result, err := service.CreateTeam(ctx, "teamA", []*domain.Member{member1, member2})

		require.Error(t, err)
		assert.Nil(t, result)
		require.NoError(t, mockDB.ExpectationsWereMet())

		// переданные участники остаются нетронутыми после отката
		for _, m := range []*domain.Member{member1, member2} {
			assert.Zero(t, m.ID)
			assert.Nil(t, m.TeamID)
		}
	})

	t.Run("ошибка: пустое имя команды", func(t *testing.T) {
		db, mockDB := setupMockDBForService(t)
		mockTeamRepo := new(mocks.MockTeamRepository)
		mockMemberRepo := new(mocks.MockMemberRepository)

		service := NewTeamService(db, mockTeamRepo, mockMemberRepo, txReposOf(mockTeamRepo, mockMemberRepo))

		result, err := service.CreateTeam(ctx, "  ", nil)

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
		require.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestTeamService_GetTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("успешное получение команды с участниками", func(t *testing.T) {
		mockTeamRepo := new(mocks.MockTeamRepository)
		mockMemberRepo := new(mocks.MockMemberRepository)
		service := NewTeamService(nil, mockTeamRepo, mockMemberRepo, nil)

		team := &domain.Team{ID: 1, Name: "teamA"}
		members := []*domain.Member{
			{ID: 1, Username: domain.StringPtr("member1"), Age: 10, TeamID: domain.Int64Ptr(1)},
			{ID: 2, Username: domain.StringPtr("member2"), Age: 20, TeamID: domain.Int64Ptr(1)},
		}

		mockTeamRepo.On("GetByName", mock.Anything, "teamA").Return(team, nil).Once()
		mockMemberRepo.On("ListByTeamID", mock.Anything, int64(1)).Return(members, nil).Once()

		result, err := service.GetTeam(ctx, "teamA")

		require.NoError(t, err)
		assert.Equal(t, team, result.Team)
		assert.Equal(t, members, result.Members)
		mockTeamRepo.AssertExpectations(t)
		mockMemberRepo.AssertExpectations(t)
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		mockTeamRepo := new(mocks.MockTeamRepository)
		mockMemberRepo := new(mocks.MockMemberRepository)
		service := NewTeamService(nil, mockTeamRepo, mockMemberRepo, nil)

		mockTeamRepo.On("GetByName", mock.Anything, "missing").
			Return(nil, domain.NewNotFoundError("team with name missing")).Once()

		result, err := service.GetTeam(ctx, "missing")

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		mockMemberRepo.AssertNotCalled(t, "ListByTeamID", mock.Anything, mock.Anything)
	})
}
