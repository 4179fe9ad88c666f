package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/sqlutil"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func NewTeamRepositoryWithTx(tx *sql.Tx) *teamRepository {
	return &teamRepository{executor: tx}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (name, created_at)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, team.Name, time.Now()).
		Scan(&team.ID, &team.CreatedAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTeamExists
		}
		return wrapErr("create team", err)
	}

	team.UpdatedAt = sqlutil.FromSqlTime(updatedAt)
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM teams
		WHERE id = $1
	`

	team, err := scanTeam(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("team with id %d", id))
		}
		return nil, wrapErr("get team", err)
	}

	return team, nil
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM teams
		WHERE name = $1
	`

	team, err := scanTeam(r.executor.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("team with name " + name)
		}
		return nil, wrapErr("get team by name", err)
	}

	return team, nil
}

func scanTeam(s rowScanner) (*domain.Team, error) {
	team := &domain.Team{}
	var updatedAt sql.NullTime
	err := s.Scan(
		&team.ID,
		&team.Name,
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	team.UpdatedAt = sqlutil.FromSqlTime(updatedAt)
	return team, nil
}
