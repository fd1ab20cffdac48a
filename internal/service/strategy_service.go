package service

import (
	"context"

	"github.com/spec-kit/me-tool/internal/domain"
	"github.com/spec-kit/me-tool/internal/repository"
	"github.com/spec-kit/me-tool/internal/validation"
	apperrors "github.com/spec-kit/me-tool/pkg/util/errorutil"
)

// StrategyService records strategic objectives and the projects under them.
type StrategyService struct {
	objectives repository.StrategicObjectiveRepository
	projects   repository.ProjectRepository
	decoder    *validation.Decoder
}

// StrategyDependencies encapsulates repositories for objectives and projects.
type StrategyDependencies struct {
	ObjectiveRepo repository.StrategicObjectiveRepository
	ProjectRepo   repository.ProjectRepository
}

// NewStrategyService constructs the service.
func NewStrategyService(deps StrategyDependencies, decoder *validation.Decoder) *StrategyService {
	return &StrategyService{
		objectives: deps.ObjectiveRepo,
		projects:   deps.ProjectRepo,
		decoder:    decoder,
	}
}

// ListObjectives returns objectives joined with their team.
func (s *StrategyService) ListObjectives(ctx context.Context) ([]domain.StrategicObjective, error) {
	objectives, err := s.objectives.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return objectives, nil
}

// CreateObjective validates and stores a strategic objective.
func (s *StrategyService) CreateObjective(ctx context.Context, actor *domain.SafeStaff, values validation.Values) (*domain.StrategicObjective, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	in, issues := s.decoder.DecodeStrategicObjective(values)
	if err := issues.Err(); err != nil {
		return nil, err
	}

	objective := in.Objective()
	if err := s.objectives.Create(ctx, &objective); err != nil {
		return nil, mapPersistenceError(err)
	}
	return &objective, nil
}

// ListProjects returns projects joined with their objective and team.
func (s *StrategyService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return projects, nil
}

// CreateProject validates and stores a project. Progress is always derived
// from the submitted target and actual values.
func (s *StrategyService) CreateProject(ctx context.Context, actor *domain.SafeStaff, values validation.Values) (*domain.Project, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	in, issues := s.decoder.DecodeProject(values)
	if err := issues.Err(); err != nil {
		return nil, err
	}

	project := in.Project()
	project.ProgressPercentage = domain.ProgressPercentage(project.ActualValue, project.TargetValue)
	if err := s.projects.Create(ctx, &project); err != nil {
		return nil, mapPersistenceError(err)
	}
	return &project, nil
}
