package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/paperpress/newsletter/internal/core/domain/subscriber"
)

// SubscriberRepository defines the interface for subscriber data operations.
type SubscriberRepository interface {
	// CreateWithToken persists a subscriber row and its confirmation token
	// row in one transaction; either both are stored or neither is.
	CreateWithToken(ctx context.Context, sub *subscriber.Subscriber, token string) error
	// GetSubscriberIDByToken resolves a confirmation token to a subscriber
	// id. Returns subscriber.ErrTokenNotFound for unknown tokens.
	GetSubscriberIDByToken(ctx context.Context, token string) (uuid.UUID, error)
	// MarkConfirmed sets the subscriber's status to confirmed. Safe to call
	// again for an already confirmed subscriber.
	MarkConfirmed(ctx context.Context, id uuid.UUID) error
	// ListConfirmedEmails returns the stored email of every confirmed
	// subscriber.
	ListConfirmedEmails(ctx context.Context) ([]string, error)
}

// SubscriptionService defines the interface for the subscription workflow.
type SubscriptionService interface {
	Subscribe(ctx context.Context, email subscriber.Email, name subscriber.Name) error
	Confirm(ctx context.Context, token string) error
}
