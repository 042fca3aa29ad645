package ports

import (
	"context"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
)

// CreateAgreementInput carries a validated create payload. References are
// record ids; State defaults to PENDING when empty.
type CreateAgreementInput struct {
	ProposalID        string
	ClientID          string
	ServiceProviderID string
	State             domain.AgreementState
}

// AgreementService defines use-case operations for agreements.
type AgreementService interface {
	Create(ctx context.Context, input CreateAgreementInput) (*domain.Agreement, error)
	List(ctx context.Context) ([]domain.AgreementDetail, error)
	GetByID(ctx context.Context, id string) (*domain.AgreementDetail, error)
	Update(ctx context.Context, id string, update AgreementUpdate) (*domain.Agreement, error)
	Delete(ctx context.Context, id string) error
}
