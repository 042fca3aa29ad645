package ports

import (
	"context"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
)

// CreateSignatureInput carries a validated create payload. Signature is the
// embedded PNG as a base64 data URI.
type CreateSignatureInput struct {
	AgreementID string
	UserID      string
	Signature   string
}

// SignatureService defines use-case operations for signatures.
type SignatureService interface {
	Create(ctx context.Context, input CreateSignatureInput) (*domain.Signature, error)
	List(ctx context.Context) ([]domain.Signature, error)
	GetByID(ctx context.Context, id string) (*domain.Signature, error)
	Update(ctx context.Context, id string, update SignatureUpdate) (*domain.Signature, error)
	Delete(ctx context.Context, id string) error
}
