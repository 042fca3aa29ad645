package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// BindStrict decodes the JSON body into dst with a closed shape: properties
// absent from dst are rejected as violations rather than silently dropped.
// On success the decoded value is run through the request validator.
func BindStrict(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if property, ok := unknownProperty(err); ok {
			return &ValidationError{Violations: []FieldViolation{{
				Property: property,
				Constraints: map[string]string{
					"whitelistValidation": "property " + property + " should not exist",
				},
			}}}
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	return c.Validate(dst)
}

// unknownProperty extracts the field name from encoding/json's unknown-field
// error, which has no typed form.
func unknownProperty(err error) (string, bool) {
	const marker = "unknown field "
	msg := err.Error()
	i := strings.Index(msg, marker)
	if i < 0 {
		return "", false
	}
	return strings.Trim(msg[i+len(marker):], `"`), true
}
