package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Decoder turns raw form values into typed inputs. It is safe for concurrent use.
type Decoder struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewDecoder builds a decoder; now defaults to time.Now.
func NewDecoder(now func() time.Time) *Decoder {
	if now == nil {
		now = time.Now
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(formName)
	return &Decoder{validate: v, now: now}
}

func formName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// check runs struct constraints and appends one message per failing field.
// Fields that already failed coercion are skipped. Issues end up in field order.
func (d *Decoder) check(in any, messages map[string]string, issues *Issues) {
	defer func() { issues.sortByField(in) }()

	err := d.validate.Struct(in)
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return
	}
	for _, fe := range validationErrs {
		path := fe.Field()
		if issues.has(path) {
			continue
		}
		msg, ok := messages[path+"."+fe.Tag()]
		if !ok {
			msg = defaultMessage(fe)
		}
		issues.add(path, msg)
	}
}

// sortByField orders issues by the declaration order of their field in the
// input struct. Paths that match no field go last.
func (is Issues) sortByField(in any) {
	t := reflect.TypeOf(in)
	index := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		index[formName(t.Field(i))] = i
	}
	position := func(path string) int {
		if i, ok := index[path]; ok {
			return i
		}
		return len(index)
	}
	sort.SliceStable(is, func(a, b int) bool {
		return position(is[a].Path) < position(is[b].Path)
	})
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		return fmt.Sprintf("%s must be %s characters or less", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "email":
		return "Invalid email address"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
