package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/me-tool/internal/domain"
)

// StrategicObjectiveRepository persists strategic objectives.
type StrategicObjectiveRepository interface {
	Create(ctx context.Context, objective *domain.StrategicObjective) error
	// List returns objectives with their responsible team attached.
	List(ctx context.Context) ([]domain.StrategicObjective, error)
}

type strategicObjectiveRepository struct {
	pool *pgxpool.Pool
}

// NewStrategicObjectiveRepository constructs repository.
func NewStrategicObjectiveRepository(pool *pgxpool.Pool) StrategicObjectiveRepository {
	return &strategicObjectiveRepository{pool: pool}
}

func (r *strategicObjectiveRepository) Create(ctx context.Context, o *domain.StrategicObjective) error {
	const query = `
        INSERT INTO strategic_objectives (name, outcome, kpi, target_value, actual_value, status, team_id, last_updated)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		o.Name,
		o.Outcome,
		o.KPI,
		o.TargetValue,
		o.ActualValue,
		o.Status,
		o.TeamID,
		o.LastUpdated,
	).Scan(&o.ID, &o.CreatedAt)
	return translate(err)
}

func (r *strategicObjectiveRepository) List(ctx context.Context) ([]domain.StrategicObjective, error) {
	const query = `
        SELECT o.id, o.name, o.outcome, o.kpi, o.target_value, o.actual_value, o.status,
               o.team_id, o.last_updated, o.created_at,
               t.id, t.name, t.created_by_id, t.created_at
        FROM strategic_objectives o
        JOIN teams t ON t.id = o.team_id
        ORDER BY o.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var result []domain.StrategicObjective
	for rows.Next() {
		var o domain.StrategicObjective
		var team domain.Team
		if err := rows.Scan(
			&o.ID, &o.Name, &o.Outcome, &o.KPI, &o.TargetValue, &o.ActualValue, &o.Status,
			&o.TeamID, &o.LastUpdated, &o.CreatedAt,
			&team.ID, &team.Name, &team.CreatedByID, &team.CreatedAt,
		); err != nil {
			return nil, err
		}
		o.Team = &team
		result = append(result, o)
	}
	return result, rows.Err()
}
