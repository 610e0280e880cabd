package user

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike, so callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("user not found")
)

// User is a publisher account allowed to broadcast newsletter issues.
// PasswordHash is an argon2id hash in PHC string format.
type User struct {
	ID           uuid.UUID `json:"id" db:"user_id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
}
