package domain

import "time"

// Team is a group of staff responsible for objectives and projects.
type Team struct {
	ID          int64
	Name        string
	CreatedByID string
	CreatedAt   time.Time
}
