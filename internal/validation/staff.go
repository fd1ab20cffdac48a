package validation

import (
	"strings"

	"github.com/spec-kit/me-tool/internal/domain"
)

const (
	// maxPasswordBytes is the longest password bcrypt will hash.
	maxPasswordBytes       = 72
	passwordTooLongMessage = "Password must be 72 bytes or less"
)

// StaffInput is a validated staff account submission.
type StaffInput struct {
	Name     string           `form:"name" validate:"required"`
	Email    string           `form:"email" validate:"required,email"`
	Role     domain.StaffRole `form:"role" validate:"required,oneof=STAFF ADMIN"`
	Password string           `form:"password" validate:"required,min=8,max=72"`
}

var staffMessages = map[string]string{
	"name.required":     "Name is required",
	"email.required":    "Email is required",
	"email.email":       "Invalid email address",
	"role.required":     "Role is required",
	"role.oneof":        "Role must be STAFF or ADMIN",
	"password.required": "Password is required",
	"password.min":      "Password must be at least 8 characters",
	"password.max":      passwordTooLongMessage,
}

// DecodeStaff validates a staff form. Emails are lower-cased.
func (d *Decoder) DecodeStaff(values Values) (StaffInput, Issues) {
	r := &reader{values: values}
	in := StaffInput{
		Name:  r.str("name"),
		Email: strings.ToLower(r.str("email")),
		Role:  domain.StaffRole(r.upper("role")),
		// Passwords are taken verbatim.
		Password: values["password"],
	}
	d.check(in, staffMessages, &r.issues)

	// max counts runes; multi-byte characters can still overflow bcrypt.
	if !r.issues.has("password") && len(in.Password) > maxPasswordBytes {
		r.issues.add("password", passwordTooLongMessage)
	}
	if len(r.issues) > 0 {
		return StaffInput{}, r.issues
	}
	return in, nil
}
