package domain

import "time"

// Workshop records a training or engagement event delivered by a project.
type Workshop struct {
	ID                         int64
	ProjectID                  int64
	Purpose                    string
	Date                       time.Time
	Location                   string
	NumParticipants            int
	DisaggregatedSex           Sex
	Disability                 bool
	AgeGroup                   AgeGroup
	PreEvaluation              string
	PostEvaluation             string
	LocalPartner               string
	LocalPartnerResponsibility string
	SuccessOfPartnership       string
	Challenges                 string
	Strengths                  string
	Outcomes                   string
	Recommendations            string
	CreatedAt                  time.Time

	Project *Project
}
