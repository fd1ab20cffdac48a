package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/me-tool/internal/domain"
)

// LivelihoodRepository persists livelihood grants.
type LivelihoodRepository interface {
	Create(ctx context.Context, livelihood *domain.Livelihood) error
	List(ctx context.Context) ([]domain.Livelihood, error)
}

type livelihoodRepository struct {
	pool *pgxpool.Pool
}

// NewLivelihoodRepository constructs repository.
func NewLivelihoodRepository(pool *pgxpool.Pool) LivelihoodRepository {
	return &livelihoodRepository{pool: pool}
}

func (r *livelihoodRepository) Create(ctx context.Context, l *domain.Livelihood) error {
	const query = `
        INSERT INTO livelihoods (project_id, participant_name, location, disaggregated_sex, disability,
            age_group, grant_amount_received, grant_purpose, progress1, progress2, outcome,
            subsequent_grant_amount)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		l.ProjectID,
		l.ParticipantName,
		l.Location,
		l.DisaggregatedSex,
		l.Disability,
		l.AgeGroup,
		l.GrantAmountReceived,
		l.GrantPurpose,
		l.Progress1,
		l.Progress2,
		l.Outcome,
		l.SubsequentGrantAmount,
	).Scan(&l.ID, &l.CreatedAt)
	return translate(err)
}

func (r *livelihoodRepository) List(ctx context.Context) ([]domain.Livelihood, error) {
	const query = `
        SELECT l.id, l.project_id, l.participant_name, l.location, l.disaggregated_sex, l.disability,
               l.age_group, l.grant_amount_received, l.grant_purpose, l.progress1, l.progress2,
               l.outcome, l.subsequent_grant_amount, l.created_at,
               p.id, p.project_name, p.status, p.progress_percentage
        FROM livelihoods l
        JOIN projects p ON p.id = l.project_id
        ORDER BY l.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var result []domain.Livelihood
	for rows.Next() {
		var l domain.Livelihood
		var p domain.Project
		if err := rows.Scan(
			&l.ID, &l.ProjectID, &l.ParticipantName, &l.Location, &l.DisaggregatedSex, &l.Disability,
			&l.AgeGroup, &l.GrantAmountReceived, &l.GrantPurpose, &l.Progress1, &l.Progress2,
			&l.Outcome, &l.SubsequentGrantAmount, &l.CreatedAt,
			&p.ID, &p.Name, &p.Status, &p.ProgressPercentage,
		); err != nil {
			return nil, err
		}
		l.Project = &p
		result = append(result, l)
	}
	return result, rows.Err()
}
