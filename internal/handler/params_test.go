package handler

import (
	"errors"
	"net/url"
	"testing"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriteria(t *testing.T) {
	t.Run("все фильтры заданы", func(t *testing.T) {
		q := url.Values{}
		q.Set("username", "member1")
		q.Set("teamName", "teamB")
		q.Set("ageGoe", "35")
		q.Set("ageLoe", "40")

		criteria, err := parseCriteria(q)

		require.NoError(t, err)
		assert.Equal(t, "member1", *criteria.Username)
		assert.Equal(t, "teamB", *criteria.TeamName)
		assert.Equal(t, 35, *criteria.AgeGoe)
		assert.Equal(t, 40, *criteria.AgeLoe)
	})

	t.Run("отсутствующие параметры остаются nil", func(t *testing.T) {
		criteria, err := parseCriteria(url.Values{})

		require.NoError(t, err)
		assert.Nil(t, criteria.Username)
		assert.Nil(t, criteria.TeamName)
		assert.Nil(t, criteria.AgeGoe)
		assert.Nil(t, criteria.AgeLoe)
	})

	t.Run("пустая строка возраста не ограничивает", func(t *testing.T) {
		q := url.Values{}
		q.Set("ageGoe", " ")

		criteria, err := parseCriteria(q)

		require.NoError(t, err)
		assert.Nil(t, criteria.AgeGoe)
	})

	t.Run("ошибка: возраст не число", func(t *testing.T) {
		q := url.Values{}
		q.Set("ageLoe", "old")

		_, err := parseCriteria(q)

		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	})
}

func TestParseSort(t *testing.T) {
	t.Run("несколько полей с модификаторами", func(t *testing.T) {
		orders, err := parseSort("age:desc,username:asc:nullslast")

		require.NoError(t, err)
		assert.Equal(t, []domain.Order{
			{Field: domain.SortByAge, Desc: true},
			{Field: domain.SortByUsername, NullsLast: true},
		}, orders)
	})

	t.Run("пустая сортировка", func(t *testing.T) {
		orders, err := parseSort("")

		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("ошибка: неизвестный модификатор", func(t *testing.T) {
		_, err := parseSort("age:sideways")

		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	})
}

func TestParsePage(t *testing.T) {
	t.Run("offset и limit", func(t *testing.T) {
		page, err := parsePage(url.Values{"offset": {"1"}, "limit": {"2"}})

		require.NoError(t, err)
		assert.Equal(t, domain.Page{Offset: 1, Limit: 2}, page)
	})

	t.Run("без параметров - нулевая страница", func(t *testing.T) {
		page, err := parsePage(url.Values{})

		require.NoError(t, err)
		assert.Equal(t, domain.Page{}, page)
	})

	t.Run("ошибка: отрицательный limit", func(t *testing.T) {
		_, err := parsePage(url.Values{"limit": {"-1"}})

		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
	})
}
