package domain

import "time"

// Livelihood records a grant paid to a programme participant.
type Livelihood struct {
	ID                    int64
	ProjectID             int64
	ParticipantName       string
	Location              string
	DisaggregatedSex      Sex
	Disability            bool
	AgeGroup              AgeGroup
	GrantAmountReceived   float64
	GrantPurpose          string
	Progress1             string
	Progress2             string
	Outcome               string
	SubsequentGrantAmount float64
	CreatedAt             time.Time

	Project *Project
}
