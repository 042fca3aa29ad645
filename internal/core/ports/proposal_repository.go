package ports

import (
	"context"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
)

// ProposalUpdate carries the optional fields of a partial update. Nil fields
// are left untouched by the store.
type ProposalUpdate struct {
	Title        *string
	Description  *string
	Duration     *int
	PaymentTerms *string
	Status       *domain.ProposalStatus
}

// ProposalRepository defines persistence for proposals.
type ProposalRepository interface {
	Create(ctx context.Context, p *domain.Proposal) (*domain.Proposal, error)
	FindByCreator(ctx context.Context, createdByID string) ([]domain.Proposal, error)
	FindByID(ctx context.Context, id string) (*domain.Proposal, error)
	Update(ctx context.Context, id string, update ProposalUpdate) (*domain.Proposal, error)
	Delete(ctx context.Context, id string) error
}
