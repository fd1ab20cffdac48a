package service

import (
	"context"

	"github.com/spec-kit/me-tool/internal/domain"
	"github.com/spec-kit/me-tool/internal/repository"
	"github.com/spec-kit/me-tool/internal/validation"
	apperrors "github.com/spec-kit/me-tool/pkg/util/errorutil"
)

// ActivityService records project activities: workshops and livelihood grants.
type ActivityService struct {
	workshops   repository.WorkshopRepository
	livelihoods repository.LivelihoodRepository
	decoder     *validation.Decoder
}

// ActivityDependencies encapsulates repositories for project activities.
type ActivityDependencies struct {
	WorkshopRepo   repository.WorkshopRepository
	LivelihoodRepo repository.LivelihoodRepository
}

// NewActivityService constructs the service.
func NewActivityService(deps ActivityDependencies, decoder *validation.Decoder) *ActivityService {
	return &ActivityService{
		workshops:   deps.WorkshopRepo,
		livelihoods: deps.LivelihoodRepo,
		decoder:     decoder,
	}
}

// ListWorkshops returns all workshops with their project.
func (s *ActivityService) ListWorkshops(ctx context.Context) ([]domain.Workshop, error) {
	workshops, err := s.workshops.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return workshops, nil
}

// CreateWorkshop validates and stores a workshop. Admin only.
func (s *ActivityService) CreateWorkshop(ctx context.Context, actor *domain.SafeStaff, values validation.Values) (*domain.Workshop, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	in, issues := s.decoder.DecodeWorkshop(values)
	if err := issues.Err(); err != nil {
		return nil, err
	}

	workshop := in.Workshop()
	if err := s.workshops.Create(ctx, &workshop); err != nil {
		return nil, mapPersistenceError(err)
	}
	return &workshop, nil
}

// ListLivelihoods returns all livelihood grants with their project.
func (s *ActivityService) ListLivelihoods(ctx context.Context) ([]domain.Livelihood, error) {
	livelihoods, err := s.livelihoods.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return livelihoods, nil
}

// CreateLivelihood validates and stores a livelihood grant. Admin only.
func (s *ActivityService) CreateLivelihood(ctx context.Context, actor *domain.SafeStaff, values validation.Values) (*domain.Livelihood, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	in, issues := s.decoder.DecodeLivelihood(values)
	if err := issues.Err(); err != nil {
		return nil, err
	}

	livelihood := in.Livelihood()
	if err := s.livelihoods.Create(ctx, &livelihood); err != nil {
		return nil, mapPersistenceError(err)
	}
	return &livelihood, nil
}
