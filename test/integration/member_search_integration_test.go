//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/bagdasarian/member-search/internal/cache"
	"github.com/bagdasarian/member-search/internal/domain"
	pgrepo "github.com/bagdasarian/member-search/internal/repository/postgres"
	"github.com/bagdasarian/member-search/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchIntegration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t)

	t.Run("команда и диапазон возраста", func(t *testing.T) {
		rows, err := f.members.Search(ctx, domain.SearchCriteria{
			AgeGoe:   domain.IntPtr(35),
			AgeLoe:   domain.IntPtr(40),
			TeamName: domain.StringPtr("teamB"),
		}, nil, domain.Page{})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "member4", *rows[0].Username)
		assert.Equal(t, 40, rows[0].Age)
		assert.Equal(t, "teamB", *rows[0].TeamName)
	})

	t.Run("границы возраста включительно", func(t *testing.T) {
		rows, err := f.members.Search(ctx, domain.SearchCriteria{
			AgeGoe: domain.IntPtr(20),
			AgeLoe: domain.IntPtr(30),
		}, nil, domain.Page{})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "member2", *rows[0].Username)
		assert.Equal(t, "member3", *rows[1].Username)
	})

	t.Run("пустые критерии возвращают всех", func(t *testing.T) {
		rows, err := f.members.Search(ctx, domain.SearchCriteria{
			Username: domain.StringPtr("   "),
			TeamName: domain.StringPtr(""),
		}, nil, domain.Page{})

		require.NoError(t, err)
		assert.Len(t, rows, 4)
	})

	t.Run("противоречивый диапазон дает пустой результат", func(t *testing.T) {
		rows, err := f.members.Search(ctx, domain.SearchCriteria{
			AgeGoe: domain.IntPtr(40),
			AgeLoe: domain.IntPtr(10),
		}, nil, domain.Page{})

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("сортировка по убыванию и страница", func(t *testing.T) {
		rows, err := f.members.Search(ctx, domain.SearchCriteria{},
			[]domain.Order{{Field: domain.SortByAge, Desc: true}},
			domain.Page{Offset: 1, Limit: 2})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 30, rows[0].Age)
		assert.Equal(t, 20, rows[1].Age)
	})

	t.Run("точное совпадение имени", func(t *testing.T) {
		row, err := f.members.FindOne(ctx, domain.SearchCriteria{Username: domain.StringPtr("member3")})

		require.NoError(t, err)
		assert.Equal(t, 30, row.Age)
	})

	t.Run("FindOne: ноль и несколько строк", func(t *testing.T) {
		_, err := f.members.FindOne(ctx, domain.SearchCriteria{Username: domain.StringPtr("nobody")})
		assert.True(t, errors.Is(err, domain.ErrNoResult))

		_, err = f.members.FindOne(ctx, domain.SearchCriteria{TeamName: domain.StringPtr("teamA")})
		assert.True(t, errors.Is(err, domain.ErrAmbiguousResult))
	})

	t.Run("проекция имен", func(t *testing.T) {
		names, err := f.members.Usernames(ctx, domain.SearchCriteria{TeamName: domain.StringPtr("teamA")})

		require.NoError(t, err)
		require.Len(t, names, 2)
		assert.Equal(t, "member1", *names[0])
	})
}

func TestMembersWithoutTeamIntegration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t)

	loner, err := f.members.CreateMember(ctx, &domain.Member{Age: 50})
	require.NoError(t, err)

	t.Run("левое соединение сохраняет участника без команды", func(t *testing.T) {
		rows, err := f.members.Search(ctx, domain.SearchCriteria{AgeGoe: domain.IntPtr(50)}, nil, domain.Page{})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, loner.ID, rows[0].MemberID)
		assert.Nil(t, rows[0].Username)
		assert.Nil(t, rows[0].TeamID)
		assert.Nil(t, rows[0].TeamName)
	})

	t.Run("NULL имени в конце при nullslast", func(t *testing.T) {
		rows, err := f.members.Search(ctx, domain.SearchCriteria{},
			[]domain.Order{{Field: domain.SortByUsername, Desc: true, NullsLast: true}},
			domain.Page{})

		require.NoError(t, err)
		require.Len(t, rows, 5)
		assert.Equal(t, "member4", *rows[0].Username)
		assert.Nil(t, rows[4].Username)
	})

	t.Run("фильтр по команде исключает участника без команды", func(t *testing.T) {
		members, err := f.members.ListByTeamName(ctx, "teamB")

		require.NoError(t, err)
		assert.Len(t, members, 2)
	})

	t.Run("перевод в команду", func(t *testing.T) {
		teamB, err := f.teams.GetTeam(ctx, "teamB")
		require.NoError(t, err)

		moved, err := f.members.ChangeTeam(ctx, loner.ID, &teamB.Team.ID)
		require.NoError(t, err)
		assert.Equal(t, teamB.Team.ID, *moved.TeamID)

		reloaded, err := f.teams.GetTeam(ctx, "teamB")
		require.NoError(t, err)
		assert.Len(t, reloaded.Members, 3)
	})
}

func TestSortNullsLastIntegration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t)

	for _, m := range []*domain.Member{
		{Age: 100},
		domain.NewMember("member6", 100),
		domain.NewMember("member5", 100),
	} {
		_, err := f.members.CreateMember(ctx, m)
		require.NoError(t, err)
	}

	rows, err := f.members.Search(ctx, domain.SearchCriteria{}, []domain.Order{
		{Field: domain.SortByAge, Desc: true},
		{Field: domain.SortByUsername, NullsLast: true},
	}, domain.Page{})

	require.NoError(t, err)
	require.Len(t, rows, 7)

	assert.Equal(t, "member5", *rows[0].Username)
	assert.Equal(t, "member6", *rows[1].Username)
	assert.Nil(t, rows[2].Username)
	for _, row := range rows[:3] {
		assert.Equal(t, 100, row.Age)
	}
	assert.Equal(t, "member4", *rows[3].Username)
}

func TestBulkIntegration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	teamA, _ := f.seed(t)

	member1 := teamA.Members[0]

	t.Run("переименование младше порога и очистка кэша", func(t *testing.T) {
		cached, err := f.members.GetMember(ctx, member1.ID)
		require.NoError(t, err)
		assert.Equal(t, "member1", *cached.Username)

		count, err := f.members.BulkUpdateUsername(ctx, 28, "guest")
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.Zero(t, f.cache.Len())

		fresh, err := f.members.GetMember(ctx, member1.ID)
		require.NoError(t, err)
		assert.Equal(t, "guest", *fresh.Username)
	})

	t.Run("увеличение возраста всем", func(t *testing.T) {
		count, err := f.members.BulkIncrementAge(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		fresh, err := f.members.GetMember(ctx, member1.ID)
		require.NoError(t, err)
		assert.Equal(t, 11, fresh.Age)
	})

	t.Run("удаление старше порога", func(t *testing.T) {
		count, err := f.members.BulkDelete(ctx, 21)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		all, err := f.members.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("без совпадений затронуто ноль строк", func(t *testing.T) {
		count, err := f.members.BulkDelete(ctx, 1000)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("ошибка: отрицательный возраст отклоняется ограничением", func(t *testing.T) {
		count, err := f.members.BulkIncrementAge(ctx, -1000)

		require.Error(t, err)
		assert.Zero(t, count)
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
		assert.False(t, domain.IsStoreUnavailable(err))
	})
}

func TestStatsIntegration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("пустая таблица", func(t *testing.T) {
		summary, err := f.stats.GetAgeSummary(ctx)
		require.NoError(t, err)
		assert.Zero(t, summary.Count)
		assert.Zero(t, summary.Avg)
	})

	f.seed(t)

	t.Run("агрегаты по возрасту", func(t *testing.T) {
		summary, err := f.stats.GetAgeSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), summary.Count)
		assert.Equal(t, int64(100), summary.Sum)
		assert.Equal(t, 25.0, summary.Avg)
		assert.Equal(t, 40, summary.Max)
		assert.Equal(t, 10, summary.Min)
	})

	t.Run("средний возраст по командам", func(t *testing.T) {
		stats, err := f.stats.GetAverageAgeByTeam(ctx)
		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, "teamA", stats[0].TeamName)
		assert.Equal(t, 15.0, stats[0].AverageAge)
		assert.Equal(t, 35.0, stats[1].AverageAge)
	})
}

func TestStoreUnavailableIntegration(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("pgx", "host=127.0.0.1 port=1 user=test dbname=test_db sslmode=disable connect_timeout=2")
	require.NoError(t, err)
	defer db.Close()

	memberCache, err := cache.NewMemberCache(8)
	require.NoError(t, err)
	members := service.NewMemberService(pgrepo.NewMemberRepository(db), pgrepo.NewTeamRepository(db), memberCache)

	_, err = members.Search(ctx, domain.SearchCriteria{}, nil, domain.Page{})

	require.Error(t, err)
	assert.True(t, domain.IsStoreUnavailable(err))
	assert.False(t, errors.Is(err, domain.ErrNoResult))
}
