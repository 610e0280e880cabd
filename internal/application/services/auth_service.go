package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/paperpress/newsletter/internal/core/domain/user"
	"github.com/paperpress/newsletter/internal/core/ports"
	"github.com/paperpress/newsletter/internal/utils"
)

// AuthService validates publisher credentials against stored argon2id hashes.
type AuthService struct {
	users  ports.UserRepository
	logger *logrus.Logger
	// fallbackHash is verified against when the username is unknown, so the
	// response time does not reveal whether a username exists.
	fallbackHash string
}

// NewAuthService creates a new auth service.
func NewAuthService(users ports.UserRepository, logger *logrus.Logger) (ports.AuthService, error) {
	fallback, err := utils.HashPassword(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("generate fallback password hash: %w", err)
	}
	return &AuthService{
		users:        users,
		logger:       logger,
		fallbackHash: fallback,
	}, nil
}

// ValidateCredentials returns the user id for a matching username/password
// pair. Unknown usernames and wrong passwords are indistinguishable to the
// caller: both produce user.ErrInvalidCredentials after a full hash
// verification.
func (s *AuthService) ValidateCredentials(ctx context.Context, username, password string) (uuid.UUID, error) {
	expectedHash := s.fallbackHash
	userID := uuid.Nil
	known := false

	u, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		expectedHash = u.PasswordHash
		userID = u.ID
		known = true
	case errors.Is(err, user.ErrNotFound):
		// Fall through to the fallback hash so the verification work is
		// done whether or not the username exists.
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"username": username}).Debug("unknown publisher username")
		}
	default:
		return uuid.Nil, fmt.Errorf("look up publisher credentials: %w", err)
	}

	match, err := utils.ComparePasswordAndHash(password, expectedHash)
	if err != nil {
		return uuid.Nil, fmt.Errorf("verify password hash: %w", err)
	}

	if !match || !known {
		return uuid.Nil, user.ErrInvalidCredentials
	}

	return userID, nil
}
