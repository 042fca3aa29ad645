package ports

import (
	"context"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
)

// SignatureUpdate carries the optional fields of a partial update.
type SignatureUpdate struct {
	AgreementID *string
	UserID      *string
	ImagePath   *string
}

// SignatureRepository defines persistence for signatures. Create must rely on
// the store's unique (agreement_id, user_id) index and return
// domain.ErrSignatureExists on a duplicate rather than pre-checking with a
// read.
type SignatureRepository interface {
	Create(ctx context.Context, s *domain.Signature) (*domain.Signature, error)
	FindAll(ctx context.Context) ([]domain.Signature, error)
	FindByID(ctx context.Context, id string) (*domain.Signature, error)
	Update(ctx context.Context, id string, update SignatureUpdate) (*domain.Signature, error)
	Delete(ctx context.Context, id string) error
}

// ImageStore persists decoded signature images outside the database.
type ImageStore interface {
	// Save decodes the data-URI payload and writes it under a name derived
	// from userID, returning the stored path.
	Save(userID string, dataURI string) (string, error)
	// Remove deletes the artifact at path. A missing artifact is not an error.
	Remove(path string) error
}
