package domain

import "time"

// Project is an initiative under a strategic objective.
type Project struct {
	ID                   int64
	Name                 string
	Objective            string
	StrategicObjectiveID int64
	Outcome              string
	Activity             string
	KPI                  string
	TargetValue          float64
	ActualValue          float64
	ProgressPercentage   float64
	Status               Status
	TeamID               int64
	Timeline             string
	LastUpdated          time.Time
	CreatedAt            time.Time

	StrategicObjective *StrategicObjective
	Team               *Team
}
