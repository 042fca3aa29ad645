package domain

import "time"

// ProposalStatus is the negotiation state of a proposal.
type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "PENDING"
	ProposalAccepted ProposalStatus = "ACCEPTED"
	ProposalRejected ProposalStatus = "REJECTED"
)

// ValidProposalStatus reports whether s is one of the declared variants.
// No transition graph is enforced: any declared status may replace any other.
func ValidProposalStatus(s ProposalStatus) bool {
	switch s {
	case ProposalPending, ProposalAccepted, ProposalRejected:
		return true
	}
	return false
}

// Proposal is a work offer between a client and a service provider.
// The three user references are stored as ids (relation-connect).
type Proposal struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Duration          int            `json:"duration"`
	PaymentTerms      string         `json:"paymentTerms"`
	Status            ProposalStatus `json:"status"`
	ClientID          string         `json:"clientId"`
	ServiceProviderID string         `json:"serviceProviderId"`
	CreatedByID       string         `json:"createdById"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}
