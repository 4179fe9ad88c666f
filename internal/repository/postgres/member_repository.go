package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/query"
	"github.com/bagdasarian/member-search/internal/sqlutil"
)

type memberRepository struct {
	executor DBExecutor
}

func NewMemberRepository(db *sql.DB) *memberRepository {
	return &memberRepository{executor: db}
}

func NewMemberRepositoryWithTx(tx *sql.Tx) *memberRepository {
	return &memberRepository{executor: tx}
}

func memberNotFound(id int64) error {
	return domain.NewNotFoundError(fmt.Sprintf("member with id %d", id))
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (username, age, team_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		sqlutil.ToSqlString(member.Username),
		member.Age,
		sqlutil.ToSqlInt64(member.TeamID),
		time.Now(),
	).Scan(&member.ID, &member.CreatedAt, &updatedAt)
	if err != nil {
		return wrapErr("create member", err)
	}

	member.UpdatedAt = sqlutil.FromSqlTime(updatedAt)
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members m
		WHERE m.id = $1
	`

	member, err := scanMember(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, memberNotFound(id)
		}
		return nil, wrapErr("get member", err)
	}

	return member, nil
}

// ChangeTeam меняет team_id одним UPDATE. Обратной коллекции у команды нет,
// поэтому связь не может обновиться наполовину.
func (r *memberRepository) ChangeTeam(ctx context.Context, memberID int64, teamID *int64) error {
	query := `
		UPDATE members
		SET team_id = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, memberID, sqlutil.ToSqlInt64(teamID), time.Now())
	if err != nil {
		return wrapErr("change member team", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapErr("change member team", err)
	}

	if rowsAffected == 0 {
		return memberNotFound(memberID)
	}

	return nil
}

func (r *memberRepository) FindAll(ctx context.Context) ([]*domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members m
		ORDER BY m.id
	`

	return r.listMembers(ctx, "find all members", query)
}

func (r *memberRepository) FindByUsername(ctx context.Context, username string) ([]*domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members m
		WHERE m.username = $1
		ORDER BY m.id
	`

	return r.listMembers(ctx, "find members by username", query, username)
}

func (r *memberRepository) ListByTeamID(ctx context.Context, teamID int64) ([]*domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members m
		WHERE m.team_id = $1
		ORDER BY m.id
	`

	return r.listMembers(ctx, "list members by team", query, teamID)
}

// ListByTeamName использует INNER JOIN: участники без команды не попадают.
func (r *memberRepository) ListByTeamName(ctx context.Context, teamName string) ([]*domain.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members m
		JOIN teams t ON m.team_id = t.id
		WHERE t.name = $1
		ORDER BY m.id
	`

	return r.listMembers(ctx, "list members by team name", query, teamName)
}

func (r *memberRepository) listMembers(ctx context.Context, op, query string, args ...any) ([]*domain.Member, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, wrapErr(op, err)
		}
		members = append(members, member)
	}

	return members, wrapErr(op, rows.Err())
}

// Search выполняет один запрос members LEFT JOIN teams по условиям из критериев.
func (r *memberRepository) Search(ctx context.Context, criteria domain.SearchCriteria, orders []domain.Order, page domain.Page) ([]*domain.MemberTeamRow, error) {
	stmt, err := query.SearchMembers(query.Criteria(criteria), orders, page)
	if err != nil {
		return nil, err
	}

	rows, err := r.executor.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, wrapErr("search members", err)
	}
	defer rows.Close()

	var result []*domain.MemberTeamRow
	for rows.Next() {
		rec, err := scanMemberTeamRecord(rows)
		if err != nil {
			return nil, wrapErr("search members", err)
		}
		result = append(result, rec.toMemberTeamRow())
	}

	return result, wrapErr("search members", rows.Err())
}

// FindOne ожидает ровно одну строку. Достаточно выбрать две, чтобы отличить
// единственный результат от неоднозначного.
func (r *memberRepository) FindOne(ctx context.Context, criteria domain.SearchCriteria) (*domain.MemberTeamRow, error) {
	rows, err := r.Search(ctx, criteria, nil, domain.Page{Limit: 2})
	if err != nil {
		return nil, err
	}

	switch len(rows) {
	case 0:
		return nil, domain.ErrNoResult
	case 1:
		return rows[0], nil
	default:
		return nil, domain.ErrAmbiguousResult
	}
}

func (r *memberRepository) Usernames(ctx context.Context, criteria domain.SearchCriteria) ([]*string, error) {
	stmt := query.MemberUsernames(query.Criteria(criteria))

	rows, err := r.executor.QueryContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, wrapErr("list usernames", err)
	}
	defer rows.Close()

	var names []*string
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, wrapErr("list usernames", err)
		}
		names = append(names, sqlutil.FromSqlStringPtr(name))
	}

	return names, wrapErr("list usernames", rows.Err())
}

func (r *memberRepository) BulkUpdateUsername(ctx context.Context, belowAge int, username string) (int64, error) {
	return r.execBulk(ctx, "bulk update username", query.UpdateUsername(query.AgeLt(belowAge), username))
}

func (r *memberRepository) BulkIncrementAge(ctx context.Context, delta int) (int64, error) {
	return r.execBulk(ctx, "bulk increment age", query.IncrementAge(query.None(), delta))
}

func (r *memberRepository) BulkDelete(ctx context.Context, aboveAge int) (int64, error) {
	return r.execBulk(ctx, "bulk delete members", query.DeleteMembers(query.AgeGt(aboveAge)))
}

func (r *memberRepository) execBulk(ctx context.Context, op string, stmt query.Statement) (int64, error) {
	result, err := r.executor.ExecContext(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return 0, wrapErr(op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, wrapErr(op, err)
	}

	return rowsAffected, nil
}
