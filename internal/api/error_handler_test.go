package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/caesarkutaa/AgreeLink/internal/api/handler"
	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/api/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandlerValidationEnvelope(t *testing.T) {
	ve := &handler.ValidationError{Violations: []handler.FieldViolation{{
		Property:    "email",
		Constraints: map[string]string{"email": "email must be an email"},
	}}}

	code, body := renderError(t, ve)

	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if body["message"] != "Validation failed" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["statusCode"] != float64(422) {
		t.Fatalf("unexpected statusCode: %v", body["statusCode"])
	}
	if body["path"] != "/v1/api/test" {
		t.Fatalf("unexpected path: %v", body["path"])
	}
	violations, ok := body["errors"].([]any)
	if !ok || len(violations) != 1 {
		t.Fatalf("unexpected errors: %v", body["errors"])
	}
	first := violations[0].(map[string]any)
	if first["property"] != "email" {
		t.Fatalf("unexpected violation: %v", first)
	}
}

func TestErrorHandlerDomainMappings(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"participant not found", domain.ErrParticipantNotFound, http.StatusNotFound, "Client or Service Provider not found"},
		{"proposal not found", domain.ErrProposalNotFound, http.StatusNotFound, "Proposal not found"},
		{"agreement not found", domain.ErrAgreementNotFound, http.StatusNotFound, "Agreement not found"},
		{"signature not found", domain.ErrSignatureNotFound, http.StatusNotFound, "Signature not found"},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict, "Email already in use"},
		{"signature exists", domain.ErrSignatureExists, http.StatusConflict, "Signature already exists for this agreement"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusForbidden, "Credentials incorrect"},
		{"internal with safe message", domain.Internal("Error creating signature"), http.StatusInternalServerError, "Error creating signature"},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if body["message"] != tc.message {
				t.Fatalf("expected %q, got %v", tc.message, body["message"])
			}
			if _, present := body["errors"]; present {
				t.Fatalf("errors must be omitted outside validation failures")
			}
		})
	}
}

func TestErrorHandlerEchoErrorsPassThrough(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if body["message"] != "invalid token" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
}
