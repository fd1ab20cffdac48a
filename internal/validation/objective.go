package validation

import (
	"time"

	"github.com/spec-kit/me-tool/internal/domain"
)

// StrategicObjectiveInput is a validated strategic objective submission.
type StrategicObjectiveInput struct {
	Name        string        `form:"name" validate:"required,max=100"`
	Outcome     string        `form:"outcome" validate:"required"`
	KPI         string        `form:"kpi" validate:"required"`
	TargetValue float64       `form:"targetValue" validate:"gt=0"`
	ActualValue float64       `form:"actualValue" validate:"gte=0"`
	Status      domain.Status `form:"status" validate:"required,oneof=ON_TRACK AT_RISK DELAYED COMPLETED"`
	TeamID      int64         `form:"teamId" validate:"gt=0"`
	LastUpdated time.Time     `form:"lastUpdated" validate:"-"`
}

var strategicObjectiveMessages = map[string]string{
	"name.required":    "Name is required",
	"name.max":         "Name must be 100 characters or less",
	"outcome.required": "Outcome is required",
	"kpi.required":     "KPI is required",
	"targetValue.gt":   "Target value must be a positive number",
	"actualValue.gte":  "Actual value must be non-negative",
	"status.required":  "Status is required",
	"status.oneof":     "Status must be one of ON_TRACK, AT_RISK, DELAYED, COMPLETED",
	"teamId.gt":        "Team ID must be a positive integer",
}

// Objective maps the input onto the domain entity.
func (in StrategicObjectiveInput) Objective() domain.StrategicObjective {
	return domain.StrategicObjective{
		Name:        in.Name,
		Outcome:     in.Outcome,
		KPI:         in.KPI,
		TargetValue: in.TargetValue,
		ActualValue: in.ActualValue,
		Status:      in.Status,
		TeamID:      in.TeamID,
		LastUpdated: in.LastUpdated,
	}
}

// DecodeStrategicObjective validates a strategic objective form. The actual
// value may equal but never exceed the target.
func (d *Decoder) DecodeStrategicObjective(values Values) (StrategicObjectiveInput, Issues) {
	r := &reader{values: values}
	in := StrategicObjectiveInput{
		Name:        r.str("name"),
		Outcome:     r.str("outcome"),
		KPI:         r.str("kpi"),
		TargetValue: r.float("targetValue", "Target value is required", "Target value must be a number"),
		ActualValue: r.float("actualValue", "Actual value is required", "Actual value must be a number"),
		Status:      domain.Status(r.upper("status")),
		TeamID:      r.integer("teamId", "Team is required", "Team ID must be a positive integer"),
		LastUpdated: r.date(dateRule{
			path:     "lastUpdated",
			layouts:  dateLayouts,
			required: "Last updated date is required",
			invalid:  "Last updated must be a valid date",
			future:   "Last updated date cannot be in the future",
		}, d.now()),
	}
	d.check(in, strategicObjectiveMessages, &r.issues)

	if !r.issues.has("targetValue") && !r.issues.has("actualValue") && in.ActualValue > in.TargetValue {
		r.issues.add("actualValue", "Actual value cannot exceed target value")
		r.issues.sortByField(in)
	}
	if len(r.issues) > 0 {
		return StrategicObjectiveInput{}, r.issues
	}
	return in, nil
}

// ProjectInput is a validated project submission. Progress is not part of the
// input; it is derived from the target and actual values when persisting.
type ProjectInput struct {
	Name                 string        `form:"name" validate:"required"`
	Objective            string        `form:"objective" validate:"required"`
	StrategicObjectiveID int64         `form:"strategicObjectiveId" validate:"gt=0"`
	Outcome              string        `form:"outcome" validate:"required"`
	Activity             string        `form:"activity" validate:"required"`
	KPI                  string        `form:"kpi" validate:"required"`
	TargetValue          float64       `form:"targetValue" validate:"gt=0"`
	ActualValue          float64       `form:"actualValue" validate:"gte=0"`
	Status               domain.Status `form:"status" validate:"required,oneof=ON_TRACK AT_RISK DELAYED COMPLETED"`
	TeamID               int64         `form:"teamId" validate:"gt=0"`
	Timeline             string        `form:"timeline" validate:"required"`
	LastUpdated          time.Time     `form:"lastUpdated" validate:"-"`
}

var projectMessages = map[string]string{
	"name.required":           "Project name is required",
	"objective.required":      "Project objective is required",
	"strategicObjectiveId.gt": "Please select a strategic objective",
	"outcome.required":        "Project outcome is required",
	"activity.required":       "Activity is required",
	"kpi.required":            "KPI is required",
	"targetValue.gt":          "Target value must be positive",
	"actualValue.gte":         "Actual value must be non-negative",
	"status.required":         "Status is required",
	"status.oneof":            "Please select a valid status",
	"teamId.gt":               "Please select a team",
	"timeline.required":       "Timeline is required",
}

// Project maps the input onto the domain entity without derived fields.
func (in ProjectInput) Project() domain.Project {
	return domain.Project{
		Name:                 in.Name,
		Objective:            in.Objective,
		StrategicObjectiveID: in.StrategicObjectiveID,
		Outcome:              in.Outcome,
		Activity:             in.Activity,
		KPI:                  in.KPI,
		TargetValue:          in.TargetValue,
		ActualValue:          in.ActualValue,
		Status:               in.Status,
		TeamID:               in.TeamID,
		Timeline:             in.Timeline,
		LastUpdated:          in.LastUpdated,
	}
}

// DecodeProject validates a project form. Unlike objectives, a project's
// actual value may exceed its target.
func (d *Decoder) DecodeProject(values Values) (ProjectInput, Issues) {
	r := &reader{values: values}
	in := ProjectInput{
		Name:                 r.str("name", "projectName"),
		Objective:            r.str("objective"),
		StrategicObjectiveID: r.integer("strategicObjectiveId", "Strategic objective is required", "Please select a strategic objective"),
		Outcome:              r.str("outcome"),
		Activity:             r.str("activity"),
		KPI:                  r.str("kpi"),
		TargetValue:          r.float("targetValue", "Target value is required", "Target value must be a number"),
		ActualValue:          r.float("actualValue", "Actual value is required", "Actual value must be a number"),
		Status:               domain.Status(r.upper("status")),
		TeamID:               r.integer("teamId", "Team is required", "Please select a team"),
		Timeline:             r.str("timeline"),
		LastUpdated: r.date(dateRule{
			path:     "lastUpdated",
			layouts:  dateOnlyLayouts,
			required: "Last updated date is required",
			invalid:  "Date must be in YYYY-MM-DD format",
			future:   "Last updated date cannot be in the future",
		}, d.now()),
	}
	d.check(in, projectMessages, &r.issues)

	if len(r.issues) > 0 {
		return ProjectInput{}, r.issues
	}
	return in, nil
}
