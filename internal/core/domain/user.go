package domain

import "time"

// User models a registered account. PasswordHash never crosses the API
// boundary; responses carry the identity fields only.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the per-request authenticated subject resolved by the auth
// guard. It carries exactly what downstream handlers need and nothing else.
type Identity struct {
	UserID string
	Email  string
}
