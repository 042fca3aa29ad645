package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindStrictDecodesValidBody(t *testing.T) {
	c := newJSONContext(t, `{"email":"alice@example.com","password":"secret"}`)

	var req loginRequest
	if err := BindStrict(c, &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Email != "alice@example.com" || req.Password != "secret" {
		t.Fatalf("unexpected decode result: %+v", req)
	}
}

func TestBindStrictRejectsUnknownProperty(t *testing.T) {
	c := newJSONContext(t, `{"email":"alice@example.com","password":"secret","admin":true}`)

	var req loginRequest
	err := BindStrict(c, &req)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Violations) != 1 || ve.Violations[0].Property != "admin" {
		t.Fatalf("unexpected violations: %+v", ve.Violations)
	}
	want := "property admin should not exist"
	if ve.Violations[0].Constraints["whitelistValidation"] != want {
		t.Fatalf("unexpected constraint: %+v", ve.Violations[0].Constraints)
	}
}

func TestBindStrictRejectsMalformedJSON(t *testing.T) {
	c := newJSONContext(t, "{")

	var req loginRequest
	err := BindStrict(c, &req)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestBindStrictRunsValidation(t *testing.T) {
	c := newJSONContext(t, `{"email":"not-an-email","password":"secret"}`)

	var req loginRequest
	err := BindStrict(c, &req)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
