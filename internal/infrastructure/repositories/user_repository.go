package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/paperpress/newsletter/internal/core/domain/user"
	"github.com/paperpress/newsletter/internal/core/ports"
	"github.com/paperpress/newsletter/internal/infrastructure/db"
)

// UserRepository implements publisher credential lookups on Postgres.
type UserRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewUserRepository creates a new user repository.
func NewUserRepository(database *db.Database, logger *logrus.Logger) ports.UserRepository {
	return &UserRepository{
		db:     database,
		logger: logger,
	}
}

// GetByUsername retrieves a publisher account by username. Returns
// user.ErrNotFound when the username is unknown.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	query := `SELECT user_id, username, password_hash FROM users WHERE username = $1`

	err := r.db.DB.GetContext(ctx, &u, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if r.logger != nil {
				r.logger.WithFields(logrus.Fields{"username": username}).Debug("db: user not found by username")
			}
			return nil, user.ErrNotFound
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"username": username}).WithError(err).Error("db: failed to get user by username")
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	return &u, nil
}
