package domain

// Status tracks delivery of an objective or project.
type Status string

const (
	StatusOnTrack   Status = "ON_TRACK"
	StatusAtRisk    Status = "AT_RISK"
	StatusDelayed   Status = "DELAYED"
	StatusCompleted Status = "COMPLETED"
)

// Sex is the disaggregation category used in activity reporting.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
	SexOther  Sex = "OTHER"
)

// AgeGroup buckets participants by age.
type AgeGroup string

const (
	AgeGroup18To29 AgeGroup = "GROUP_18_29"
	AgeGroup30To44 AgeGroup = "GROUP_30_44"
	AgeGroup45To54 AgeGroup = "GROUP_45_54"
	AgeGroup55To64 AgeGroup = "GROUP_55_64"
	AgeGroup65Plus AgeGroup = "GROUP_65_PLUS"
)

// ProgressPercentage returns actual/target*100. A non-positive target yields 0.
func ProgressPercentage(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return actual / target * 100
}
