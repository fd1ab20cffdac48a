package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/me-tool/internal/domain"
)

// ProjectRepository persists projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	// List returns projects joined with their strategic objective and team.
	List(ctx context.Context) ([]domain.Project, error)
}

type projectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository constructs repository.
func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &projectRepository{pool: pool}
}

func (r *projectRepository) Create(ctx context.Context, p *domain.Project) error {
	const query = `
        INSERT INTO projects (project_name, project_objective, strategic_objective_id, project_outcome,
            activity, project_kpi, target_value, actual_value, progress_percentage, status, team_id,
            timeline, last_updated)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		p.Name,
		p.Objective,
		p.StrategicObjectiveID,
		p.Outcome,
		p.Activity,
		p.KPI,
		p.TargetValue,
		p.ActualValue,
		p.ProgressPercentage,
		p.Status,
		p.TeamID,
		p.Timeline,
		p.LastUpdated,
	).Scan(&p.ID, &p.CreatedAt)
	return translate(err)
}

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const query = `
        SELECT p.id, p.project_name, p.project_objective, p.strategic_objective_id, p.project_outcome,
               p.activity, p.project_kpi, p.target_value, p.actual_value, p.progress_percentage,
               p.status, p.team_id, p.timeline, p.last_updated, p.created_at,
               o.id, o.name, o.outcome, o.kpi, o.target_value, o.actual_value, o.status,
               o.team_id, o.last_updated, o.created_at,
               t.id, t.name, t.created_by_id, t.created_at
        FROM projects p
        JOIN strategic_objectives o ON o.id = p.strategic_objective_id
        JOIN teams t ON t.id = p.team_id
        ORDER BY p.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var result []domain.Project
	for rows.Next() {
		var p domain.Project
		var o domain.StrategicObjective
		var team domain.Team
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Objective, &p.StrategicObjectiveID, &p.Outcome,
			&p.Activity, &p.KPI, &p.TargetValue, &p.ActualValue, &p.ProgressPercentage,
			&p.Status, &p.TeamID, &p.Timeline, &p.LastUpdated, &p.CreatedAt,
			&o.ID, &o.Name, &o.Outcome, &o.KPI, &o.TargetValue, &o.ActualValue, &o.Status,
			&o.TeamID, &o.LastUpdated, &o.CreatedAt,
			&team.ID, &team.Name, &team.CreatedByID, &team.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.StrategicObjective = &o
		p.Team = &team
		result = append(result, p)
	}
	return result, rows.Err()
}
