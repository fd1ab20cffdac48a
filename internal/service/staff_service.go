package service

import (
	"context"

	"github.com/spec-kit/me-tool/internal/auth"
	"github.com/spec-kit/me-tool/internal/domain"
	"github.com/spec-kit/me-tool/internal/repository"
	"github.com/spec-kit/me-tool/internal/validation"
	apperrors "github.com/spec-kit/me-tool/pkg/util/errorutil"
)

// StaffService manages staff accounts and teams.
type StaffService struct {
	staff      repository.StaffRepository
	teams      repository.TeamRepository
	decoder    *validation.Decoder
	bcryptCost int
}

// OrgDependencies encapsulates repositories required for org management.
type OrgDependencies struct {
	StaffRepo repository.StaffRepository
	TeamRepo  repository.TeamRepository
}

// NewStaffService constructs the service.
func NewStaffService(deps OrgDependencies, decoder *validation.Decoder, bcryptCost int) *StaffService {
	return &StaffService{
		staff:      deps.StaffRepo,
		teams:      deps.TeamRepo,
		decoder:    decoder,
		bcryptCost: bcryptCost,
	}
}

// ListStaff returns every staff member without credentials.
func (s *StaffService) ListStaff(ctx context.Context) ([]domain.SafeStaff, error) {
	members, err := s.staff.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	result := make([]domain.SafeStaff, 0, len(members))
	for i := range members {
		result = append(result, members[i].Safe())
	}
	return result, nil
}

// CreateStaffMember adds a staff account on behalf of an admin.
func (s *StaffService) CreateStaffMember(ctx context.Context, actor *domain.SafeStaff, values validation.Values) (*domain.SafeStaff, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.RegisterStaffMember(ctx, values)
}

// RegisterStaffMember validates and stores a staff account without an actor.
// It backs the create-user command used to seed the first admin.
func (s *StaffService) RegisterStaffMember(ctx context.Context, values validation.Values) (*domain.SafeStaff, error) {
	in, issues := s.decoder.DecodeStaff(values)
	if err := issues.Err(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	member := &domain.StaffMember{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	}
	if err := s.staff.Create(ctx, member); err != nil {
		return nil, mapPersistenceError(err)
	}
	safe := member.Safe()
	return &safe, nil
}

// ListTeams returns all teams.
func (s *StaffService) ListTeams(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return teams, nil
}

// CreateTeam creates a team owned by the acting admin.
func (s *StaffService) CreateTeam(ctx context.Context, actor *domain.SafeStaff, values validation.Values) (*domain.Team, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	in, issues := s.decoder.DecodeTeam(values)
	if err := issues.Err(); err != nil {
		return nil, err
	}

	team := &domain.Team{Name: in.Name, CreatedByID: actor.ID}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, mapPersistenceError(err)
	}
	return team, nil
}
