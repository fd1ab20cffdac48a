package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/me-tool/internal/domain"
)

// WorkshopRepository persists workshops.
type WorkshopRepository interface {
	Create(ctx context.Context, workshop *domain.Workshop) error
	List(ctx context.Context) ([]domain.Workshop, error)
}

type workshopRepository struct {
	pool *pgxpool.Pool
}

// NewWorkshopRepository constructs repository.
func NewWorkshopRepository(pool *pgxpool.Pool) WorkshopRepository {
	return &workshopRepository{pool: pool}
}

func (r *workshopRepository) Create(ctx context.Context, w *domain.Workshop) error {
	const query = `
        INSERT INTO workshops (project_id, purpose, date, location, num_participants, disaggregated_sex,
            disability, age_group, pre_evaluation, post_evaluation, local_partner,
            local_partner_responsibility, success_of_partnership, challenges, strengths, outcomes,
            recommendations)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
        RETURNING id, created_at`
	err := r.pool.QueryRow(ctx, query,
		w.ProjectID,
		w.Purpose,
		w.Date,
		w.Location,
		w.NumParticipants,
		w.DisaggregatedSex,
		w.Disability,
		w.AgeGroup,
		w.PreEvaluation,
		w.PostEvaluation,
		w.LocalPartner,
		w.LocalPartnerResponsibility,
		w.SuccessOfPartnership,
		w.Challenges,
		w.Strengths,
		w.Outcomes,
		w.Recommendations,
	).Scan(&w.ID, &w.CreatedAt)
	return translate(err)
}

func (r *workshopRepository) List(ctx context.Context) ([]domain.Workshop, error) {
	const query = `
        SELECT w.id, w.project_id, w.purpose, w.date, w.location, w.num_participants,
               w.disaggregated_sex, w.disability, w.age_group, w.pre_evaluation, w.post_evaluation,
               w.local_partner, w.local_partner_responsibility, w.success_of_partnership,
               w.challenges, w.strengths, w.outcomes, w.recommendations, w.created_at,
               p.id, p.project_name, p.status, p.progress_percentage
        FROM workshops w
        JOIN projects p ON p.id = w.project_id
        ORDER BY w.date DESC, w.id DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var result []domain.Workshop
	for rows.Next() {
		var w domain.Workshop
		var p domain.Project
		if err := rows.Scan(
			&w.ID, &w.ProjectID, &w.Purpose, &w.Date, &w.Location, &w.NumParticipants,
			&w.DisaggregatedSex, &w.Disability, &w.AgeGroup, &w.PreEvaluation, &w.PostEvaluation,
			&w.LocalPartner, &w.LocalPartnerResponsibility, &w.SuccessOfPartnership,
			&w.Challenges, &w.Strengths, &w.Outcomes, &w.Recommendations, &w.CreatedAt,
			&p.ID, &p.Name, &p.Status, &p.ProgressPercentage,
		); err != nil {
			return nil, err
		}
		w.Project = &p
		result = append(result, w)
	}
	return result, rows.Err()
}
