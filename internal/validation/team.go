package validation

// TeamInput is a validated team submission.
type TeamInput struct {
	Name string `form:"name" validate:"required,max=100"`
}

var teamMessages = map[string]string{
	"name.required": "Team name is required",
	"name.max":      "Team name must be 100 characters or less",
}

// DecodeTeam validates a team form.
func (d *Decoder) DecodeTeam(values Values) (TeamInput, Issues) {
	r := &reader{values: values}
	in := TeamInput{Name: r.str("name")}
	d.check(in, teamMessages, &r.issues)
	if len(r.issues) > 0 {
		return TeamInput{}, r.issues
	}
	return in, nil
}
