package domain

import "time"

// AgreementState is the lifecycle state of an agreement.
type AgreementState string

const (
	AgreementPending   AgreementState = "PENDING"
	AgreementActive    AgreementState = "ACTIVE"
	AgreementCompleted AgreementState = "COMPLETED"
)

// ValidAgreementState reports whether s is one of the declared variants.
func ValidAgreementState(s AgreementState) bool {
	switch s {
	case AgreementPending, AgreementActive, AgreementCompleted:
		return true
	}
	return false
}

// Agreement binds an accepted proposal to its two parties.
type Agreement struct {
	ID                string         `json:"id"`
	State             AgreementState `json:"state"`
	ProposalID        string         `json:"proposalId"`
	ClientID          string         `json:"clientId"`
	ServiceProviderID string         `json:"serviceProviderId"`
	CreatedAt         time.Time      `json:"created_at"`
	SignedAt          *time.Time     `json:"signed_at,omitempty"`
}

// UserRef is the password-free projection of a User embedded in agreement
// reads.
type UserRef struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// AgreementDetail is the read view with related records embedded.
type AgreementDetail struct {
	Agreement
	Proposal        *Proposal `json:"proposal,omitempty"`
	Client          *UserRef  `json:"client,omitempty"`
	ServiceProvider *UserRef  `json:"serviceProvider,omitempty"`
}
