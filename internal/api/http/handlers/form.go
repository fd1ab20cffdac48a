package handlers

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/me-tool/internal/validation"
	apperrors "github.com/spec-kit/me-tool/pkg/util/errorutil"
)

const invalidFormMessage = "Invalid form submission"

// formValues flattens a urlencoded, multipart or JSON body into string fields.
// Repeated keys keep their first value.
func formValues(c *fiber.Ctx) (validation.Values, error) {
	values := validation.Values{}
	contentType := strings.ToLower(string(c.Request().Header.ContentType()))

	switch {
	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		var raw map[string]any
		if err := json.Unmarshal(c.Body(), &raw); err != nil {
			return nil, apperrors.NewBadRequest(invalidFormMessage)
		}
		for key, val := range raw {
			if s, ok := stringify(val); ok {
				values[key] = s
			}
		}
	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, apperrors.NewBadRequest(invalidFormMessage)
		}
		for key, vals := range form.Value {
			if len(vals) > 0 {
				values[key] = vals[0]
			}
		}
	default:
		c.Request().PostArgs().VisitAll(func(key, val []byte) {
			k := string(key)
			if _, exists := values[k]; !exists {
				values[k] = string(val)
			}
		})
	}
	return values, nil
}

// stringify renders JSON scalars the way a form would submit them. Objects
// and arrays are dropped.
func stringify(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	case nil:
		return "", false
	default:
		return "", false
	}
}
