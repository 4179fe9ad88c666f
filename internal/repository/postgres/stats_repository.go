package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/member-search/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

func (r *statsRepository) GetAgeSummary(ctx context.Context) (*domain.AgeSummary, error) {
	query := `
		SELECT COUNT(m.id),
		       COALESCE(SUM(m.age), 0),
		       COALESCE(AVG(m.age), 0)::float8,
		       COALESCE(MAX(m.age), 0),
		       COALESCE(MIN(m.age), 0)
		FROM members m
	`

	summary := &domain.AgeSummary{}
	err := r.executor.QueryRowContext(ctx, query).Scan(
		&summary.Count,
		&summary.Sum,
		&summary.Avg,
		&summary.Max,
		&summary.Min,
	)
	if err != nil {
		return nil, wrapErr("get age summary", err)
	}

	return summary, nil
}

// GetAverageAgeByTeam группирует только участников с командой (INNER JOIN).
func (r *statsRepository) GetAverageAgeByTeam(ctx context.Context) ([]*domain.TeamAgeStat, error) {
	query := `
		SELECT t.name, AVG(m.age)::float8 AS average_age
		FROM members m
		JOIN teams t ON m.team_id = t.id
		GROUP BY t.name
		ORDER BY t.name
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapErr("get average age by team", err)
	}
	defer rows.Close()

	var stats []*domain.TeamAgeStat
	for rows.Next() {
		stat := &domain.TeamAgeStat{}
		if err := rows.Scan(&stat.TeamName, &stat.AverageAge); err != nil {
			return nil, wrapErr("get average age by team", err)
		}
		stats = append(stats, stat)
	}

	return stats, wrapErr("get average age by team", rows.Err())
}
