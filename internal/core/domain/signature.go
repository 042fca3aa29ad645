package domain

import "time"

// Signature records that a user signed an agreement. The decoded image is
// stored on disk; ImagePath points at the artifact. At most one signature
// exists per (agreement, user) pair, enforced by a store-level unique index.
type Signature struct {
	ID          string    `json:"id"`
	AgreementID string    `json:"agreementId"`
	UserID      string    `json:"userId"`
	ImagePath   string    `json:"imagePath"`
	SignedAt    time.Time `json:"signedAt"`
}
