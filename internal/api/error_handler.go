package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/caesarkutaa/AgreeLink/internal/api/handler"
	"github.com/caesarkutaa/AgreeLink/internal/api/metrics"
	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	StatusCode int                      `json:"statusCode"`
	Message    string                   `json:"message"`
	Errors     []handler.FieldViolation `json:"errors,omitempty"`
	Timestamp  string                   `json:"timestamp"`
	Path       string                   `json:"path"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as 422 with per-field violations.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, violations := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{
			StatusCode: code,
			Message:    msg,
			Errors:     violations,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Path:       c.Request().URL.Path,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, []handler.FieldViolation) {
	// Validation failures carry their violations onto the wire.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		metrics.ValidationFailuresTotal.WithLabelValues(c.Path()).Inc()
		return http.StatusUnprocessableEntity, "Validation failed", ve.Violations
	}

	// Echo's own errors (bind failures, 404 from router, 401 from the guard).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	// Known domain errors → deterministic HTTP codes and fixed messages.
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrParticipantNotFound),
		errors.Is(err, domain.ErrProposalNotFound),
		errors.Is(err, domain.ErrAgreementNotFound),
		errors.Is(err, domain.ErrSignatureNotFound):
		return http.StatusNotFound, err.Error(), nil
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrSignatureExists):
		return http.StatusConflict, err.Error(), nil
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusForbidden, err.Error(), nil
	}

	// Re-surfaced store/filesystem failures: safe message, cause already
	// logged at the service boundary.
	var ie *domain.InternalError
	if errors.As(err, &ie) {
		return http.StatusInternalServerError, ie.Message, nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error", nil
}
