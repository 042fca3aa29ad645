package handler

type createAgreementRequest struct {
	ProposalID        string `json:"proposalId"        validate:"required"`
	ClientID          string `json:"clientId"          validate:"required"`
	ServiceProviderID string `json:"serviceProviderId" validate:"required"`
	State             string `json:"state"             validate:"omitempty,oneof=PENDING ACTIVE COMPLETED"`
}

type updateAgreementRequest struct {
	State             *string `json:"state" validate:"omitempty,oneof=PENDING ACTIVE COMPLETED"`
	ProposalID        *string `json:"proposalId"`
	ClientID          *string `json:"clientId"`
	ServiceProviderID *string `json:"serviceProviderId"`
}
