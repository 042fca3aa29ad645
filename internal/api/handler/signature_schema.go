package handler

type createSignatureRequest struct {
	AgreementID string `json:"agreementId" validate:"required"`
	UserID      string `json:"userId"      validate:"required"`
	Signature   string `json:"signature"   validate:"required"`
}

type updateSignatureRequest struct {
	AgreementID *string `json:"agreementId"`
	UserID      *string `json:"userId"`
	ImagePath   *string `json:"imagePath"`
}
