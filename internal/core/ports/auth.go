package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/paperpress/newsletter/internal/core/domain/user"
)

// UserRepository defines the interface for publisher credential lookups.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}

// AuthService validates publisher credentials. Unknown usernames and wrong
// passwords both yield user.ErrInvalidCredentials.
type AuthService interface {
	ValidateCredentials(ctx context.Context, username, password string) (uuid.UUID, error)
}
