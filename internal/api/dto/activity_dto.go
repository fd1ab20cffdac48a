package dto

import (
	"time"

	"github.com/spec-kit/me-tool/internal/domain"
)

// WorkshopResponse is a workshop with its project attached on list views.
type WorkshopResponse struct {
	ID                         int64            `json:"id"`
	ProjectID                  int64            `json:"projectId"`
	Purpose                    string           `json:"purpose"`
	Date                       string           `json:"date"`
	Location                   string           `json:"location"`
	NumParticipants            int              `json:"numParticipants"`
	DisaggregatedSex           domain.Sex       `json:"disaggregatedSex"`
	Disability                 bool             `json:"disability"`
	AgeGroup                   domain.AgeGroup  `json:"ageGroup"`
	PreEvaluation              string           `json:"preEvaluation"`
	PostEvaluation             string           `json:"postEvaluation"`
	LocalPartner               string           `json:"localPartner"`
	LocalPartnerResponsibility string           `json:"localPartnerResponsibility"`
	SuccessOfPartnership       string           `json:"successOfPartnership"`
	Challenges                 string           `json:"challenges"`
	Strengths                  string           `json:"strengths"`
	Outcomes                   string           `json:"outcomes"`
	Recommendations            string           `json:"recommendations"`
	CreatedAt                  time.Time        `json:"createdAt"`
	Project                    *ProjectResponse `json:"project,omitempty"`
}

// LivelihoodResponse is a livelihood grant with its project attached on list views.
type LivelihoodResponse struct {
	ID                    int64            `json:"id"`
	ProjectID             int64            `json:"projectId"`
	ParticipantName       string           `json:"participantName"`
	Location              string           `json:"location"`
	DisaggregatedSex      domain.Sex       `json:"disaggregatedSex"`
	Disability            bool             `json:"disability"`
	AgeGroup              domain.AgeGroup  `json:"ageGroup"`
	GrantAmountReceived   float64          `json:"grantAmountReceived"`
	GrantPurpose          string           `json:"grantPurpose"`
	Progress1             string           `json:"progress1"`
	Progress2             string           `json:"progress2"`
	Outcome               string           `json:"outcome"`
	SubsequentGrantAmount float64          `json:"subsequentGrantAmount"`
	CreatedAt             time.Time        `json:"createdAt"`
	Project               *ProjectResponse `json:"project,omitempty"`
}

func NewWorkshopResponse(w *domain.Workshop) *WorkshopResponse {
	return &WorkshopResponse{
		ID:                         w.ID,
		ProjectID:                  w.ProjectID,
		Purpose:                    w.Purpose,
		Date:                       w.Date.Format(time.RFC3339),
		Location:                   w.Location,
		NumParticipants:            w.NumParticipants,
		DisaggregatedSex:           w.DisaggregatedSex,
		Disability:                 w.Disability,
		AgeGroup:                   w.AgeGroup,
		PreEvaluation:              w.PreEvaluation,
		PostEvaluation:             w.PostEvaluation,
		LocalPartner:               w.LocalPartner,
		LocalPartnerResponsibility: w.LocalPartnerResponsibility,
		SuccessOfPartnership:       w.SuccessOfPartnership,
		Challenges:                 w.Challenges,
		Strengths:                  w.Strengths,
		Outcomes:                   w.Outcomes,
		Recommendations:            w.Recommendations,
		CreatedAt:                  w.CreatedAt,
		Project:                    NewProjectResponse(w.Project),
	}
}

func NewWorkshopResponses(workshops []domain.Workshop) []WorkshopResponse {
	result := make([]WorkshopResponse, 0, len(workshops))
	for i := range workshops {
		result = append(result, *NewWorkshopResponse(&workshops[i]))
	}
	return result
}

func NewLivelihoodResponse(l *domain.Livelihood) *LivelihoodResponse {
	return &LivelihoodResponse{
		ID:                    l.ID,
		ProjectID:             l.ProjectID,
		ParticipantName:       l.ParticipantName,
		Location:              l.Location,
		DisaggregatedSex:      l.DisaggregatedSex,
		Disability:            l.Disability,
		AgeGroup:              l.AgeGroup,
		GrantAmountReceived:   l.GrantAmountReceived,
		GrantPurpose:          l.GrantPurpose,
		Progress1:             l.Progress1,
		Progress2:             l.Progress2,
		Outcome:               l.Outcome,
		SubsequentGrantAmount: l.SubsequentGrantAmount,
		CreatedAt:             l.CreatedAt,
		Project:               NewProjectResponse(l.Project),
	}
}

func NewLivelihoodResponses(livelihoods []domain.Livelihood) []LivelihoodResponse {
	result := make([]LivelihoodResponse, 0, len(livelihoods))
	for i := range livelihoods {
		result = append(result, *NewLivelihoodResponse(&livelihoods[i]))
	}
	return result
}
