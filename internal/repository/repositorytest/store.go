// Package repositorytest provides in-memory repositories that mirror the
// Postgres constraint behavior of the repository package.
package repositorytest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/me-tool/internal/domain"
	"github.com/spec-kit/me-tool/internal/repository"
)

// Store holds every table. The zero value is not usable; call NewStore.
type Store struct {
	mu          sync.Mutex
	now         func() time.Time
	staff       []domain.StaffMember
	teams       []domain.Team
	objectives  []domain.StrategicObjective
	projects    []domain.Project
	workshops   []domain.Workshop
	livelihoods []domain.Livelihood

	// Err, when set, is returned by every call.
	Err error
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Staff returns a StaffRepository backed by the store.
func (s *Store) Staff() repository.StaffRepository { return staffRepo{s} }

// Teams returns a TeamRepository backed by the store.
func (s *Store) Teams() repository.TeamRepository { return teamRepo{s} }

// Objectives returns a StrategicObjectiveRepository backed by the store.
func (s *Store) Objectives() repository.StrategicObjectiveRepository { return objectiveRepo{s} }

// Projects returns a ProjectRepository backed by the store.
func (s *Store) Projects() repository.ProjectRepository { return projectRepo{s} }

// Workshops returns a WorkshopRepository backed by the store.
func (s *Store) Workshops() repository.WorkshopRepository { return workshopRepo{s} }

// Livelihoods returns a LivelihoodRepository backed by the store.
func (s *Store) Livelihoods() repository.LivelihoodRepository { return livelihoodRepo{s} }

// Counts reports the number of rows per table, keyed by table name.
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]int{
		"staff":                len(s.staff),
		"teams":                len(s.teams),
		"strategic_objectives": len(s.objectives),
		"projects":             len(s.projects),
		"workshops":            len(s.workshops),
		"livelihoods":          len(s.livelihoods),
	}
}

func (s *Store) team(id int64) (domain.Team, bool) {
	for _, t := range s.teams {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Team{}, false
}

func (s *Store) objective(id int64) (domain.StrategicObjective, bool) {
	for _, o := range s.objectives {
		if o.ID == id {
			return o, true
		}
	}
	return domain.StrategicObjective{}, false
}

func (s *Store) project(id int64) (domain.Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Project{}, false
}

type staffRepo struct{ s *Store }

func (r staffRepo) Create(_ context.Context, staff *domain.StaffMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, existing := range r.s.staff {
		if strings.EqualFold(existing.Email, staff.Email) {
			return &repository.DuplicateError{Constraint: repository.ConstraintStaffEmail}
		}
	}
	if staff.ID == "" {
		staff.ID = uuid.NewString()
	}
	staff.CreatedAt = r.s.now()
	r.s.staff = append(r.s.staff, *staff)
	return nil
}

func (r staffRepo) GetByID(_ context.Context, id string) (*domain.StaffMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, staff := range r.s.staff {
		if staff.ID == id {
			found := staff
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r staffRepo) GetByEmail(_ context.Context, email string) (*domain.StaffMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, staff := range r.s.staff {
		if strings.EqualFold(staff.Email, email) {
			found := staff
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r staffRepo) List(context.Context) ([]domain.StaffMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return append([]domain.StaffMember(nil), r.s.staff...), nil
}

type teamRepo struct{ s *Store }

func (r teamRepo) Create(_ context.Context, team *domain.Team) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if !r.s.hasStaff(team.CreatedByID) {
		return &repository.ReferenceError{Constraint: repository.ConstraintTeamCreatedBy}
	}
	team.ID = int64(len(r.s.teams) + 1)
	team.CreatedAt = r.s.now()
	r.s.teams = append(r.s.teams, *team)
	return nil
}

func (r teamRepo) List(context.Context) ([]domain.Team, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return append([]domain.Team(nil), r.s.teams...), nil
}

func (s *Store) hasStaff(id string) bool {
	for _, staff := range s.staff {
		if staff.ID == id {
			return true
		}
	}
	return false
}

type objectiveRepo struct{ s *Store }

func (r objectiveRepo) Create(_ context.Context, o *domain.StrategicObjective) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.team(o.TeamID); !ok {
		return &repository.ReferenceError{Constraint: repository.ConstraintObjectiveTeam}
	}
	if o.ActualValue > o.TargetValue {
		return fmt.Errorf("check constraint strategic_objectives_actual_le_target violated")
	}
	o.ID = int64(len(r.s.objectives) + 1)
	o.CreatedAt = r.s.now()
	stored := *o
	stored.Team = nil
	r.s.objectives = append(r.s.objectives, stored)
	return nil
}

func (r objectiveRepo) List(context.Context) ([]domain.StrategicObjective, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	result := make([]domain.StrategicObjective, 0, len(r.s.objectives))
	for _, o := range r.s.objectives {
		team, _ := r.s.team(o.TeamID)
		o.Team = &team
		result = append(result, o)
	}
	return result, nil
}

type projectRepo struct{ s *Store }

func (r projectRepo) Create(_ context.Context, p *domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.objective(p.StrategicObjectiveID); !ok {
		return &repository.ReferenceError{Constraint: repository.ConstraintProjectStrategicObjective}
	}
	if _, ok := r.s.team(p.TeamID); !ok {
		return &repository.ReferenceError{Constraint: repository.ConstraintProjectTeam}
	}
	p.ID = int64(len(r.s.projects) + 1)
	p.CreatedAt = r.s.now()
	stored := *p
	stored.StrategicObjective, stored.Team = nil, nil
	r.s.projects = append(r.s.projects, stored)
	return nil
}

func (r projectRepo) List(context.Context) ([]domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	result := make([]domain.Project, 0, len(r.s.projects))
	for _, p := range r.s.projects {
		objective, _ := r.s.objective(p.StrategicObjectiveID)
		team, _ := r.s.team(p.TeamID)
		p.StrategicObjective = &objective
		p.Team = &team
		result = append(result, p)
	}
	return result, nil
}

type workshopRepo struct{ s *Store }

func (r workshopRepo) Create(_ context.Context, w *domain.Workshop) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.project(w.ProjectID); !ok {
		return &repository.ReferenceError{Constraint: repository.ConstraintWorkshopProject}
	}
	w.ID = int64(len(r.s.workshops) + 1)
	w.CreatedAt = r.s.now()
	stored := *w
	stored.Project = nil
	r.s.workshops = append(r.s.workshops, stored)
	return nil
}

func (r workshopRepo) List(context.Context) ([]domain.Workshop, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	result := make([]domain.Workshop, 0, len(r.s.workshops))
	for _, w := range r.s.workshops {
		project, _ := r.s.project(w.ProjectID)
		w.Project = &project
		result = append(result, w)
	}
	return result, nil
}

type livelihoodRepo struct{ s *Store }

func (r livelihoodRepo) Create(_ context.Context, l *domain.Livelihood) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.project(l.ProjectID); !ok {
		return &repository.ReferenceError{Constraint: repository.ConstraintLivelihoodProject}
	}
	l.ID = int64(len(r.s.livelihoods) + 1)
	l.CreatedAt = r.s.now()
	stored := *l
	stored.Project = nil
	r.s.livelihoods = append(r.s.livelihoods, stored)
	return nil
}

func (r livelihoodRepo) List(context.Context) ([]domain.Livelihood, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	result := make([]domain.Livelihood, 0, len(r.s.livelihoods))
	for _, l := range r.s.livelihoods {
		project, _ := r.s.project(l.ProjectID)
		l.Project = &project
		result = append(result, l)
	}
	return result, nil
}
