package handler

import "github.com/caesarkutaa/AgreeLink/internal/core/domain"

type createProposalRequest struct {
	Title           string `json:"title"           validate:"required"`
	Description     string `json:"description"     validate:"required"`
	Duration        int    `json:"duration"        validate:"required"`
	PaymentTerms    string `json:"paymentTerms"    validate:"required"`
	Status          string `json:"status"          validate:"required,oneof=PENDING ACCEPTED REJECTED"`
	Client          string `json:"client"          validate:"required,email"`
	ServiceProvider string `json:"serviceProvider" validate:"required,email"`
}

type updateProposalRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Duration     *int    `json:"duration"`
	PaymentTerms *string `json:"paymentTerms"`
	Status       *string `json:"status" validate:"omitempty,oneof=PENDING ACCEPTED REJECTED"`
}

type updateProposalResponse struct {
	Message  string           `json:"message"`
	Proposal *domain.Proposal `json:"proposal"`
}

type messageResponse struct {
	Message string `json:"message"`
}
