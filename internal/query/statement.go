package query

import (
	"fmt"
	"strings"

	"github.com/bagdasarian/member-search/internal/domain"
)

// Statement - готовый SQL с параметрами.
type Statement struct {
	SQL  string
	Args []any
}

const memberTeamSelect = `SELECT m.id, m.username, m.age, t.id, t.name
FROM members m
LEFT JOIN teams t ON m.team_id = t.id`

var sortColumns = map[domain.SortField]string{
	domain.SortByMemberID: ColMemberID,
	domain.SortByUsername: ColUsername,
	domain.SortByAge:      ColAge,
	domain.SortByTeamName: ColTeamName,
}

// SearchMembers строит один запрос members LEFT JOIN teams: фильтр, затем
// сортировка, затем OFFSET/LIMIT. Участник без команды попадает в выборку
// с NULL в столбцах команды.
func SearchMembers(where Cond, orders []domain.Order, page domain.Page) (Statement, error) {
	if page.Offset < 0 {
		return Statement{}, domain.NewInvalidArgumentError("offset must not be negative: %d", page.Offset)
	}
	if page.Limit < 0 {
		return Statement{}, domain.NewInvalidArgumentError("limit must not be negative: %d", page.Limit)
	}

	var sb strings.Builder
	sb.WriteString(memberTeamSelect)

	whereSQL, args := where.SQL(0)
	if whereSQL != "" {
		sb.WriteString("\nWHERE ")
		sb.WriteString(whereSQL)
	}

	orderSQL, err := orderBy(orders)
	if err != nil {
		return Statement{}, err
	}
	sb.WriteString("\nORDER BY ")
	sb.WriteString(orderSQL)

	if page.Limit > 0 {
		args = append(args, page.Limit)
		fmt.Fprintf(&sb, "\nLIMIT $%d", len(args))
	}
	if page.Offset > 0 {
		args = append(args, page.Offset)
		fmt.Fprintf(&sb, "\nOFFSET $%d", len(args))
	}

	return Statement{SQL: sb.String(), Args: args}, nil
}

// orderBy добавляет m.id последним ключом, чтобы порядок при равных
// значениях был детерминированным.
func orderBy(orders []domain.Order) (string, error) {
	parts := make([]string, 0, len(orders)+1)
	hasID := false
	for _, o := range orders {
		col, ok := sortColumns[o.Field]
		if !ok {
			return "", domain.NewInvalidArgumentError("unknown sort field %q", o.Field)
		}
		if col == ColMemberID {
			hasID = true
		}

		part := col
		if o.Desc {
			part += " DESC"
		} else {
			part += " ASC"
		}
		if o.NullsLast {
			part += " NULLS LAST"
		}
		parts = append(parts, part)
	}
	if !hasID {
		parts = append(parts, ColMemberID+" ASC")
	}
	return strings.Join(parts, ", "), nil
}

// MemberUsernames - скалярная проекция имен по тому же фильтру.
func MemberUsernames(where Cond) Statement {
	var sb strings.Builder
	sb.WriteString(`SELECT m.username
FROM members m
LEFT JOIN teams t ON m.team_id = t.id`)

	whereSQL, args := where.SQL(0)
	if whereSQL != "" {
		sb.WriteString("\nWHERE ")
		sb.WriteString(whereSQL)
	}
	sb.WriteString("\nORDER BY m.id ASC")

	return Statement{SQL: sb.String(), Args: args}
}

// Массовые операции работают только со столбцами members (алиас m).

func UpdateUsername(where Cond, username string) Statement {
	args := []any{username}
	sql := "UPDATE members AS m SET username = $1, updated_at = CURRENT_TIMESTAMP"

	whereSQL, whereArgs := where.SQL(len(args))
	if whereSQL != "" {
		sql += " WHERE " + whereSQL
		args = append(args, whereArgs...)
	}
	return Statement{SQL: sql, Args: args}
}

func IncrementAge(where Cond, delta int) Statement {
	args := []any{delta}
	sql := "UPDATE members AS m SET age = m.age + $1, updated_at = CURRENT_TIMESTAMP"

	whereSQL, whereArgs := where.SQL(len(args))
	if whereSQL != "" {
		sql += " WHERE " + whereSQL
		args = append(args, whereArgs...)
	}
	return Statement{SQL: sql, Args: args}
}

func DeleteMembers(where Cond) Statement {
	sql := "DELETE FROM members AS m"

	whereSQL, args := where.SQL(0)
	if whereSQL != "" {
		sql += " WHERE " + whereSQL
	}
	return Statement{SQL: sql, Args: args}
}
