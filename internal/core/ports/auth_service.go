package ports

import "context"

// RegisterInput carries a validated registration payload.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// UserSummary is the password-free identity slice returned by auth
// operations.
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// LoginResult carries the issued bearer token and its subject.
type LoginResult struct {
	AccessToken string
	User        UserSummary
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*UserSummary, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
