package ports

import (
	"context"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
)

// CreateProposalInput carries a validated create payload. Client and
// ServiceProvider are user emails, resolved to ids by the service.
type CreateProposalInput struct {
	Title           string
	Description     string
	Duration        int
	PaymentTerms    string
	Status          domain.ProposalStatus
	Client          string
	ServiceProvider string
}

// ProposalList is the list view returned to the creator.
type ProposalList struct {
	Proposals []domain.Proposal `json:"proposals"`
	Count     int               `json:"count"`
}

// ProposalService defines use-case operations for proposals. Mutations are
// attributed to the authenticated creator id where one is required.
type ProposalService interface {
	Create(ctx context.Context, input CreateProposalInput, createdByID string) (*domain.Proposal, error)
	ListByCreator(ctx context.Context, createdByID string) (*ProposalList, error)
	GetByID(ctx context.Context, id string) (*domain.Proposal, error)
	Update(ctx context.Context, id string, update ProposalUpdate) (*domain.Proposal, error)
	Delete(ctx context.Context, id string) error
}
