package domain

import "time"

// StrategicObjective is a top-level organisational goal with a KPI target.
type StrategicObjective struct {
	ID          int64
	Name        string
	Outcome     string
	KPI         string
	TargetValue float64
	ActualValue float64
	Status      Status
	TeamID      int64
	LastUpdated time.Time
	CreatedAt   time.Time

	// Team is populated by list queries.
	Team *Team
}

// Progress is computed on read; it is not stored for objectives.
func (o *StrategicObjective) Progress() float64 {
	return ProgressPercentage(o.ActualValue, o.TargetValue)
}
