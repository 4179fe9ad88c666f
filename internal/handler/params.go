package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/bagdasarian/member-search/internal/domain"
)

// parseCriteria читает фильтры из query string. Отсутствующий параметр
// остается nil; пустые строки отбрасываются позже, в комбинаторах.
func parseCriteria(q url.Values) (domain.SearchCriteria, error) {
	var criteria domain.SearchCriteria

	if q.Has("username") {
		criteria.Username = domain.StringPtr(q.Get("username"))
	}
	if q.Has("teamName") {
		criteria.TeamName = domain.StringPtr(q.Get("teamName"))
	}

	var err error
	if criteria.AgeGoe, err = optionalInt(q, "ageGoe"); err != nil {
		return criteria, err
	}
	if criteria.AgeLoe, err = optionalInt(q, "ageLoe"); err != nil {
		return criteria, err
	}

	return criteria, nil
}

func optionalInt(q url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.NewInvalidArgumentError("%s must be an integer", key)
	}
	return &v, nil
}

// parseSort разбирает "age:desc,username:asc:nullslast".
func parseSort(raw string) ([]domain.Order, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var orders []domain.Order
	for _, item := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(item), ":")
		order := domain.Order{Field: domain.SortField(parts[0])}

		for _, modifier := range parts[1:] {
			switch strings.ToLower(modifier) {
			case "asc":
				order.Desc = false
			case "desc":
				order.Desc = true
			case "nullslast":
				order.NullsLast = true
			default:
				return nil, domain.NewInvalidArgumentError("unknown sort modifier %q", modifier)
			}
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func parsePage(q url.Values) (domain.Page, error) {
	var page domain.Page

	offset, err := optionalInt(q, "offset")
	if err != nil {
		return page, err
	}
	limit, err := optionalInt(q, "limit")
	if err != nil {
		return page, err
	}

	if offset != nil {
		page.Offset = *offset
	}
	if limit != nil {
		if *limit < 0 {
			return page, domain.NewInvalidArgumentError("limit must not be negative")
		}
		page.Limit = *limit
	}

	return page, nil
}
