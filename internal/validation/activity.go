package validation

import (
	"time"

	"github.com/spec-kit/me-tool/internal/domain"
)

const (
	sexMessage      = "Sex must be one of MALE, FEMALE, OTHER"
	ageGroupMessage = "Age group must be one of GROUP_18_29, GROUP_30_44, GROUP_45_54, GROUP_55_64, GROUP_65_PLUS"
)

// WorkshopInput is a validated workshop submission.
type WorkshopInput struct {
	ProjectID                  int64           `form:"projectId" validate:"gt=0"`
	Purpose                    string          `form:"purpose" validate:"required"`
	Date                       time.Time       `form:"date" validate:"-"`
	Location                   string          `form:"location" validate:"required"`
	NumParticipants            int64           `form:"numParticipants" validate:"gte=0,lte=2147483647"`
	DisaggregatedSex           domain.Sex      `form:"disaggregatedSex" validate:"required,oneof=MALE FEMALE OTHER"`
	Disability                 bool            `form:"disability"`
	AgeGroup                   domain.AgeGroup `form:"ageGroup" validate:"required,oneof=GROUP_18_29 GROUP_30_44 GROUP_45_54 GROUP_55_64 GROUP_65_PLUS"`
	PreEvaluation              string          `form:"preEvaluation" validate:"required"`
	PostEvaluation             string          `form:"postEvaluation" validate:"required"`
	LocalPartner               string          `form:"localPartner" validate:"required"`
	LocalPartnerResponsibility string          `form:"localPartnerResponsibility" validate:"required"`
	SuccessOfPartnership       string          `form:"successOfPartnership" validate:"required"`
	Challenges                 string          `form:"challenges" validate:"required"`
	Strengths                  string          `form:"strengths" validate:"required"`
	Outcomes                   string          `form:"outcomes" validate:"required"`
	Recommendations            string          `form:"recommendations" validate:"required"`
}

var workshopMessages = map[string]string{
	"projectId.gt":                        "Project ID must be a positive integer",
	"purpose.required":                    "Purpose is required",
	"location.required":                   "Location is required",
	"numParticipants.gte":                 "Number of participants must be non-negative",
	"numParticipants.lte":                 "Number of participants is too large",
	"disaggregatedSex.required":           sexMessage,
	"disaggregatedSex.oneof":              sexMessage,
	"ageGroup.required":                   ageGroupMessage,
	"ageGroup.oneof":                      ageGroupMessage,
	"preEvaluation.required":              "Pre-evaluation is required",
	"postEvaluation.required":             "Post-evaluation is required",
	"localPartner.required":               "Local partner is required",
	"localPartnerResponsibility.required": "Local partner responsibility is required",
	"successOfPartnership.required":       "Success of partnership is required",
	"challenges.required":                 "Challenges are required",
	"strengths.required":                  "Strengths are required",
	"outcomes.required":                   "Outcomes are required",
	"recommendations.required":            "Recommendations are required",
}

// Workshop maps the input onto the domain entity.
func (in WorkshopInput) Workshop() domain.Workshop {
	return domain.Workshop{
		ProjectID:                  in.ProjectID,
		Purpose:                    in.Purpose,
		Date:                       in.Date,
		Location:                   in.Location,
		NumParticipants:            int(in.NumParticipants),
		DisaggregatedSex:           in.DisaggregatedSex,
		Disability:                 in.Disability,
		AgeGroup:                   in.AgeGroup,
		PreEvaluation:              in.PreEvaluation,
		PostEvaluation:             in.PostEvaluation,
		LocalPartner:               in.LocalPartner,
		LocalPartnerResponsibility: in.LocalPartnerResponsibility,
		SuccessOfPartnership:       in.SuccessOfPartnership,
		Challenges:                 in.Challenges,
		Strengths:                  in.Strengths,
		Outcomes:                   in.Outcomes,
		Recommendations:            in.Recommendations,
	}
}

// DecodeWorkshop validates a workshop form. The legacy form names "sex" and
// "partnershipSuccess" are accepted as aliases.
func (d *Decoder) DecodeWorkshop(values Values) (WorkshopInput, Issues) {
	r := &reader{values: values}
	in := WorkshopInput{
		ProjectID: r.integer("projectId", "Project is required", "Project ID must be a positive integer"),
		Purpose:   r.str("purpose"),
		Date: r.date(dateRule{
			path:     "date",
			layouts:  dateLayouts,
			required: "Workshop date is required",
			invalid:  "Workshop date must be a valid date",
			future:   "Workshop date cannot be in the future",
		}, d.now()),
		Location:                   r.str("location"),
		NumParticipants:            r.integer("numParticipants", "Number of participants is required", "Number of participants must be a whole number"),
		DisaggregatedSex:           domain.Sex(r.upper("disaggregatedSex", "sex")),
		Disability:                 r.boolean("disability"),
		AgeGroup:                   domain.AgeGroup(r.upper("ageGroup")),
		PreEvaluation:              r.str("preEvaluation"),
		PostEvaluation:             r.str("postEvaluation"),
		LocalPartner:               r.str("localPartner"),
		LocalPartnerResponsibility: r.str("localPartnerResponsibility"),
		SuccessOfPartnership:       r.str("successOfPartnership", "partnershipSuccess"),
		Challenges:                 r.str("challenges"),
		Strengths:                  r.str("strengths"),
		Outcomes:                   r.str("outcomes"),
		Recommendations:            r.str("recommendations"),
	}
	d.check(in, workshopMessages, &r.issues)
	if len(r.issues) > 0 {
		return WorkshopInput{}, r.issues
	}
	return in, nil
}

// LivelihoodInput is a validated livelihood grant submission.
type LivelihoodInput struct {
	ProjectID             int64           `form:"projectId" validate:"gt=0"`
	ParticipantName       string          `form:"participantName" validate:"required"`
	Location              string          `form:"location" validate:"required"`
	DisaggregatedSex      domain.Sex      `form:"disaggregatedSex" validate:"required,oneof=MALE FEMALE OTHER"`
	Disability            bool            `form:"disability"`
	AgeGroup              domain.AgeGroup `form:"ageGroup" validate:"required,oneof=GROUP_18_29 GROUP_30_44 GROUP_45_54 GROUP_55_64 GROUP_65_PLUS"`
	GrantAmountReceived   float64         `form:"grantAmountReceived" validate:"gt=0"`
	GrantPurpose          string          `form:"grantPurpose" validate:"required"`
	Progress1             string          `form:"progress1" validate:"required"`
	Progress2             string          `form:"progress2" validate:"required"`
	Outcome               string          `form:"outcome" validate:"required"`
	SubsequentGrantAmount float64         `form:"subsequentGrantAmount" validate:"gte=0"`
}

var livelihoodMessages = map[string]string{
	"projectId.gt":              "Project ID must be a positive integer",
	"participantName.required":  "Participant name is required",
	"location.required":         "Location is required",
	"disaggregatedSex.required": sexMessage,
	"disaggregatedSex.oneof":    sexMessage,
	"ageGroup.required":         ageGroupMessage,
	"ageGroup.oneof":            ageGroupMessage,
	"grantAmountReceived.gt":    "Grant amount must be positive",
	"grantPurpose.required":     "Grant purpose is required",
	"progress1.required":        "Progress 1 is required",
	"progress2.required":        "Progress 2 is required",
	"outcome.required":          "Outcome is required",
	"subsequentGrantAmount.gte": "Subsequent grant amount must be non-negative",
}

// Livelihood maps the input onto the domain entity.
func (in LivelihoodInput) Livelihood() domain.Livelihood {
	return domain.Livelihood{
		ProjectID:             in.ProjectID,
		ParticipantName:       in.ParticipantName,
		Location:              in.Location,
		DisaggregatedSex:      in.DisaggregatedSex,
		Disability:            in.Disability,
		AgeGroup:              in.AgeGroup,
		GrantAmountReceived:   in.GrantAmountReceived,
		GrantPurpose:          in.GrantPurpose,
		Progress1:             in.Progress1,
		Progress2:             in.Progress2,
		Outcome:               in.Outcome,
		SubsequentGrantAmount: in.SubsequentGrantAmount,
	}
}

// DecodeLivelihood validates a livelihood grant form.
func (d *Decoder) DecodeLivelihood(values Values) (LivelihoodInput, Issues) {
	r := &reader{values: values}
	in := LivelihoodInput{
		ProjectID:             r.integer("projectId", "Project is required", "Project ID must be a positive integer"),
		ParticipantName:       r.str("participantName"),
		Location:              r.str("location"),
		DisaggregatedSex:      domain.Sex(r.upper("disaggregatedSex", "sex")),
		Disability:            r.boolean("disability"),
		AgeGroup:              domain.AgeGroup(r.upper("ageGroup")),
		GrantAmountReceived:   r.float("grantAmountReceived", "Grant amount is required", "Grant amount must be a number"),
		GrantPurpose:          r.str("grantPurpose"),
		Progress1:             r.str("progress1"),
		Progress2:             r.str("progress2"),
		Outcome:               r.str("outcome"),
		SubsequentGrantAmount: r.float("subsequentGrantAmount", "Subsequent grant amount is required", "Subsequent grant amount must be a number"),
	}
	d.check(in, livelihoodMessages, &r.issues)
	if len(r.issues) > 0 {
		return LivelihoodInput{}, r.issues
	}
	return in, nil
}
