package dto

import (
	"time"

	"github.com/spec-kit/me-tool/internal/domain"
)

// StaffResponse is the public view of a staff member. It has no password field.
type StaffResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Role      domain.StaffRole `json:"role"`
	CreatedAt time.Time        `json:"createdAt"`
}

// TeamResponse is a team.
type TeamResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CreatedByID string    `json:"createdById,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TeamOption is the id/name pair used by selection lists.
type TeamOption struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewStaffResponse returns nil for a nil user so anonymous views render null.
func NewStaffResponse(user *domain.SafeStaff) *StaffResponse {
	if user == nil {
		return nil
	}
	return &StaffResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func NewStaffResponses(staff []domain.SafeStaff) []StaffResponse {
	result := make([]StaffResponse, 0, len(staff))
	for i := range staff {
		result = append(result, *NewStaffResponse(&staff[i]))
	}
	return result
}

func NewTeamResponse(team *domain.Team) *TeamResponse {
	if team == nil {
		return nil
	}
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		CreatedByID: team.CreatedByID,
		CreatedAt:   team.CreatedAt,
	}
}

func NewTeamResponses(teams []domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		result = append(result, *NewTeamResponse(&teams[i]))
	}
	return result
}

func NewTeamOptions(teams []domain.Team) []TeamOption {
	result := make([]TeamOption, 0, len(teams))
	for _, team := range teams {
		result = append(result, TeamOption{ID: team.ID, Name: team.Name})
	}
	return result
}
