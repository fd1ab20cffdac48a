package dto

import (
	"time"

	"github.com/spec-kit/me-tool/internal/domain"
)

// dateLayout renders calendar dates the way the forms submit them.
const dateLayout = "2006-01-02"

// ObjectiveResponse is a strategic objective with its read-time progress.
type ObjectiveResponse struct {
	ID                 int64         `json:"id"`
	Name               string        `json:"name"`
	Outcome            string        `json:"outcome"`
	KPI                string        `json:"kpi"`
	TargetValue        float64       `json:"targetValue"`
	ActualValue        float64       `json:"actualValue"`
	ProgressPercentage float64       `json:"progressPercentage"`
	Status             domain.Status `json:"status"`
	TeamID             int64         `json:"teamId"`
	LastUpdated        string        `json:"lastUpdated"`
	CreatedAt          time.Time     `json:"createdAt"`
	ResponsibleTeam    *TeamResponse `json:"responsibleTeam,omitempty"`
}

// ProjectResponse is a project with its stored progress.
type ProjectResponse struct {
	ID                   int64              `json:"id"`
	ProjectName          string             `json:"projectName"`
	ProjectObjective     string             `json:"projectObjective"`
	StrategicObjectiveID int64              `json:"strategicObjectiveId"`
	ProjectOutcome       string             `json:"projectOutcome"`
	Activity             string             `json:"activity"`
	ProjectKPI           string             `json:"projectKpi"`
	TargetValue          float64            `json:"targetValue"`
	ActualValue          float64            `json:"actualValue"`
	ProgressPercentage   float64            `json:"progressPercentage"`
	Status               domain.Status      `json:"status"`
	TeamID               int64              `json:"teamId"`
	Timeline             string             `json:"timeline"`
	LastUpdated          string             `json:"lastUpdated"`
	CreatedAt            time.Time          `json:"createdAt"`
	StrategicObjective   *ObjectiveResponse `json:"strategicObjective,omitempty"`
	ResponsibleTeam      *TeamResponse      `json:"responsibleTeam,omitempty"`
}

func NewObjectiveResponse(o *domain.StrategicObjective) *ObjectiveResponse {
	if o == nil {
		return nil
	}
	return &ObjectiveResponse{
		ID:                 o.ID,
		Name:               o.Name,
		Outcome:            o.Outcome,
		KPI:                o.KPI,
		TargetValue:        o.TargetValue,
		ActualValue:        o.ActualValue,
		ProgressPercentage: o.Progress(),
		Status:             o.Status,
		TeamID:             o.TeamID,
		LastUpdated:        o.LastUpdated.Format(time.RFC3339),
		CreatedAt:          o.CreatedAt,
		ResponsibleTeam:    NewTeamResponse(o.Team),
	}
}

func NewObjectiveResponses(objectives []domain.StrategicObjective) []ObjectiveResponse {
	result := make([]ObjectiveResponse, 0, len(objectives))
	for i := range objectives {
		result = append(result, *NewObjectiveResponse(&objectives[i]))
	}
	return result
}

func NewProjectResponse(p *domain.Project) *ProjectResponse {
	if p == nil {
		return nil
	}
	return &ProjectResponse{
		ID:                   p.ID,
		ProjectName:          p.Name,
		ProjectObjective:     p.Objective,
		StrategicObjectiveID: p.StrategicObjectiveID,
		ProjectOutcome:       p.Outcome,
		Activity:             p.Activity,
		ProjectKPI:           p.KPI,
		TargetValue:          p.TargetValue,
		ActualValue:          p.ActualValue,
		ProgressPercentage:   p.ProgressPercentage,
		Status:               p.Status,
		TeamID:               p.TeamID,
		Timeline:             p.Timeline,
		LastUpdated:          p.LastUpdated.Format(dateLayout),
		CreatedAt:            p.CreatedAt,
		StrategicObjective:   NewObjectiveResponse(p.StrategicObjective),
		ResponsibleTeam:      NewTeamResponse(p.Team),
	}
}

func NewProjectResponses(projects []domain.Project) []ProjectResponse {
	result := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		result = append(result, *NewProjectResponse(&projects[i]))
	}
	return result
}
