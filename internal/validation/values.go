package validation

import (
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/spec-kit/me-tool/pkg/util/errorutil"
)

// Values is a flat view of submitted form fields.
type Values map[string]string

// Get returns the trimmed value of the first key present.
func (v Values) Get(keys ...string) string {
	for _, key := range keys {
		if val, ok := v[key]; ok {
			return strings.TrimSpace(val)
		}
	}
	return ""
}

// Issues is an ordered list of field errors. Empty means the input is valid.
type Issues []apperrors.FieldError

// Err converts the issues into a validation DomainError, or nil when empty.
func (is Issues) Err() error {
	if len(is) == 0 {
		return nil
	}
	return apperrors.NewValidationError(is)
}

func (is *Issues) add(path, message string) {
	*is = append(*is, apperrors.FieldError{Path: path, Message: message})
}

func (is Issues) has(path string) bool {
	for _, issue := range is {
		if issue.Path == path {
			return true
		}
	}
	return false
}

// reader coerces string fields, recording an issue for each failure.
type reader struct {
	values Values
	issues Issues
}

func (r *reader) str(path string, aliases ...string) string {
	return r.values.Get(append([]string{path}, aliases...)...)
}

func (r *reader) float(path, required, invalid string) float64 {
	raw := r.values.Get(path)
	if raw == "" {
		r.issues.add(path, required)
		return 0
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		r.issues.add(path, invalid)
		return 0
	}
	return parsed
}

func (r *reader) integer(path, required, invalid string) int64 {
	raw := r.values.Get(path)
	if raw == "" {
		r.issues.add(path, required)
		return 0
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.issues.add(path, invalid)
		return 0
	}
	return parsed
}

// boolean treats a missing field as false, matching an unchecked checkbox.
func (r *reader) boolean(path string) bool {
	switch strings.ToLower(r.values.Get(path)) {
	case "true", "on", "yes", "1":
		return true
	default:
		return false
	}
}

func (r *reader) upper(path string, aliases ...string) string {
	return strings.ToUpper(r.str(path, aliases...))
}

var (
	dateOnlyLayouts = []string{"2006-01-02"}
	dateLayouts     = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano, "2006-01-02T15:04"}
)

// dateRule describes how one date field is parsed and which messages it uses.
type dateRule struct {
	path     string
	layouts  []string
	required string
	invalid  string
	future   string
}

// date parses the field and rejects values after now.
func (r *reader) date(rule dateRule, now time.Time) time.Time {
	raw := r.values.Get(rule.path)
	if raw == "" {
		r.issues.add(rule.path, rule.required)
		return time.Time{}
	}
	for _, layout := range rule.layouts {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if parsed.After(now) {
			r.issues.add(rule.path, rule.future)
			return time.Time{}
		}
		return parsed
	}
	r.issues.add(rule.path, rule.invalid)
	return time.Time{}
}
