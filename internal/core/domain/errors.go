package domain

import "errors"

// Deliberate failures raised by services. The HTTP error handler maps each
// to its status code; anything outside this set renders as a generic 500.
var (
	ErrUserNotFound        = errors.New("User not found")
	ErrEmailTaken          = errors.New("Email already in use")
	ErrInvalidCredentials  = errors.New("Credentials incorrect")
	ErrParticipantNotFound = errors.New("Client or Service Provider not found")
	ErrProposalNotFound    = errors.New("Proposal not found")
	ErrAgreementNotFound   = errors.New("Agreement not found")
	ErrSignatureNotFound   = errors.New("Signature not found")
	ErrSignatureExists     = errors.New("Signature already exists for this agreement")
)

// InternalError re-surfaces an unexpected store, filesystem, or crypto
// failure under a safe resource-scoped message. The original cause is logged
// at the service boundary and never carried here.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return e.Message }

// Internal wraps msg as an InternalError.
func Internal(msg string) error {
	return &InternalError{Message: msg}
}
