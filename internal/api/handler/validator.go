package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldViolation reports every failed constraint of one request property.
type FieldViolation struct {
	Property    string            `json:"property"`
	Constraints map[string]string `json:"constraints"`
}

// ValidationError carries per-field violations to the central error handler,
// which renders them as a 422 with the violations attached.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string { return "Validation failed" }

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator. Property names come from json tags, and the custom
// "password" tag enforces character-class complexity.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("password", passwordComplexity)
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	// One violation per property, all failed constraints grouped under it.
	byProperty := map[string]*FieldViolation{}
	order := make([]string, 0, len(ve))
	for _, fe := range ve {
		property := fe.Field()
		violation, ok := byProperty[property]
		if !ok {
			violation = &FieldViolation{Property: property, Constraints: map[string]string{}}
			byProperty[property] = violation
			order = append(order, property)
		}
		violation.Constraints[fe.Tag()] = constraintMessage(fe)
	}

	out := &ValidationError{Violations: make([]FieldViolation, 0, len(order))}
	for _, property := range order {
		out.Violations = append(out.Violations, *byProperty[property])
	}
	return out
}

// passwordComplexity requires at least one upper-case letter, one lower-case
// letter, and one digit or symbol.
func passwordComplexity(fl validator.FieldLevel) bool {
	var hasUpper, hasLower, hasDigitOrSymbol bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasDigitOrSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigitOrSymbol
}

// constraintMessage converts a single failed constraint into the wire message.
func constraintMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " should not be empty"
	case "email":
		return field + " must be an email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be longer than or equal to %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be shorter than or equal to %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "password":
		return field + " must contain upper and lower case letters and a number or symbol"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
