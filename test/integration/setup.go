//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bagdasarian/member-search/internal/cache"
	"github.com/bagdasarian/member-search/internal/db"
	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/repository"
	pgrepo "github.com/bagdasarian/member-search/internal/repository/postgres"
	"github.com/bagdasarian/member-search/internal/service"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx, "postgres:17.7",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	applyMigrations(t, connStr)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

func applyMigrations(t *testing.T, connStr string) {
	path, err := filepath.Abs(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)

	require.NoError(t, db.Migrate(connStr, path), "не удалось применить миграцию")
}

type fixture struct {
	db      *sql.DB
	cache   *cache.MemberCache
	members service.MemberService
	teams   service.TeamService
	stats   service.StatsService
}

func newFixture(t *testing.T) *fixture {
	database := setupTestDB(t)

	memberCache, err := cache.NewMemberCache(64)
	require.NoError(t, err)

	teamRepo := pgrepo.NewTeamRepository(database)
	memberRepo := pgrepo.NewMemberRepository(database)
	txRepos := func(tx *sql.Tx) (repository.TeamRepository, repository.MemberRepository) {
		return pgrepo.NewTeamRepositoryWithTx(tx), pgrepo.NewMemberRepositoryWithTx(tx)
	}

	return &fixture{
		db:      database,
		cache:   memberCache,
		members: service.NewMemberService(memberRepo, teamRepo, memberCache),
		teams:   service.NewTeamService(database, teamRepo, memberRepo, txRepos),
		stats:   service.NewStatsService(pgrepo.NewStatsRepository(database)),
	}
}

// seed создает teamA (member1, member2) и teamB (member3, member4)
func (f *fixture) seed(t *testing.T) (teamA, teamB *domain.TeamMembers) {
	ctx := context.Background()

	teamA, err := f.teams.CreateTeam(ctx, "teamA", []*domain.Member{
		domain.NewMember("member1", 10),
		domain.NewMember("member2", 20),
	})
	require.NoError(t, err)

	teamB, err = f.teams.CreateTeam(ctx, "teamB", []*domain.Member{
		domain.NewMember("member3", 30),
		domain.NewMember("member4", 40),
	})
	require.NoError(t, err)

	return teamA, teamB
}
