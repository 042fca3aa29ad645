package ports

import (
	"context"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
)

// UserRepository defines persistence for user accounts. Create must rely on
// the store's unique email index and return domain.ErrEmailTaken on a
// duplicate rather than leaving uniqueness to a pre-check read.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
