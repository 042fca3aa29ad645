package ports

import (
	"context"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
)

// AgreementUpdate carries the optional fields of a partial update. Reference
// fields re-connect the agreement to another record when present.
type AgreementUpdate struct {
	State             *domain.AgreementState
	ProposalID        *string
	ClientID          *string
	ServiceProviderID *string
}

// AgreementRepository defines persistence for agreements. Read operations
// return the detail view with proposal and party records embedded, passwords
// excluded.
type AgreementRepository interface {
	Create(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error)
	FindAll(ctx context.Context) ([]domain.AgreementDetail, error)
	FindByID(ctx context.Context, id string) (*domain.AgreementDetail, error)
	Update(ctx context.Context, id string, update AgreementUpdate) (*domain.Agreement, error)
	Delete(ctx context.Context, id string) error
}
