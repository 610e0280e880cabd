package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/paperpress/newsletter/internal/core/domain/subscriber"
	"github.com/paperpress/newsletter/internal/core/ports"
	"github.com/paperpress/newsletter/internal/infrastructure/db"
)

// SubscriberRepository implements the subscriber repository interface on
// Postgres.
type SubscriberRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewSubscriberRepository creates a new subscriber repository.
func NewSubscriberRepository(database *db.Database, logger *logrus.Logger) ports.SubscriberRepository {
	return &SubscriberRepository{
		db:     database,
		logger: logger,
	}
}

// CreateWithToken inserts the subscriber row and its confirmation token row
// inside one transaction. If either insert or the commit fails, nothing is
// persisted.
func (r *SubscriberRepository) CreateWithToken(ctx context.Context, sub *subscriber.Subscriber, token string) error {
	tx, err := r.db.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin subscription transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertSubscriber := `
		INSERT INTO subscriptions (id, email, name, subscribed_at, status)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := tx.ExecContext(ctx, insertSubscriber,
		sub.ID, sub.Email, sub.Name, sub.SubscribedAt, sub.Status); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"subscriber_id": sub.ID, "email": sub.Email}).WithError(err).Error("db: failed to insert subscriber")
		}
		return fmt.Errorf("insert subscriber: %w", err)
	}

	insertToken := `
		INSERT INTO subscription_tokens (subscription_token, subscriber_id)
		VALUES ($1, $2)`

	if _, err := tx.ExecContext(ctx, insertToken, token, sub.ID); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"subscriber_id": sub.ID}).WithError(err).Error("db: failed to store subscription token")
		}
		return fmt.Errorf("store subscription token: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"subscriber_id": sub.ID}).WithError(err).Error("db: failed to commit subscription transaction")
		}
		return fmt.Errorf("commit subscription transaction: %w", err)
	}

	return nil
}

// GetSubscriberIDByToken resolves a confirmation token to the owning
// subscriber id.
func (r *SubscriberRepository) GetSubscriberIDByToken(ctx context.Context, token string) (uuid.UUID, error) {
	var id uuid.UUID
	query := `SELECT subscriber_id FROM subscription_tokens WHERE subscription_token = $1`

	err := r.db.DB.GetContext(ctx, &id, query, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if r.logger != nil {
				r.logger.Debug("db: subscription token not found")
			}
			return uuid.Nil, subscriber.ErrTokenNotFound
		}
		if r.logger != nil {
			r.logger.WithError(err).Error("db: failed to look up subscription token")
		}
		return uuid.Nil, fmt.Errorf("get subscriber id by token: %w", err)
	}

	return id, nil
}

// MarkConfirmed flips the subscriber's status to confirmed. Re-running it for
// an already confirmed subscriber rewrites the same value.
func (r *SubscriberRepository) MarkConfirmed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE subscriptions SET status = $2 WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query, id, subscriber.StatusConfirmed)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"subscriber_id": id}).WithError(err).Error("db: failed to confirm subscriber")
		}
		return fmt.Errorf("update subscriber status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"subscriber_id": id}).Debug("db: confirm affected 0 rows - subscriber not found")
		}
		return fmt.Errorf("subscriber with ID %s not found", id)
	}

	return nil
}

// ListConfirmedEmails returns the stored email of every confirmed subscriber.
func (r *SubscriberRepository) ListConfirmedEmails(ctx context.Context) ([]string, error) {
	var emails []string
	query := `SELECT email FROM subscriptions WHERE status = $1`

	err := r.db.DB.SelectContext(ctx, &emails, query, subscriber.StatusConfirmed)
	if err != nil {
		if r.logger != nil {
			r.logger.WithError(err).Error("db: failed to list confirmed subscribers")
		}
		return nil, fmt.Errorf("list confirmed subscribers: %w", err)
	}

	return emails, nil
}
