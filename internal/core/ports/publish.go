package ports

import (
	"context"

	"github.com/paperpress/newsletter/internal/core/domain/newsletter"
)

// PublishService broadcasts a newsletter issue to every confirmed subscriber.
type PublishService interface {
	Publish(ctx context.Context, issue *newsletter.Issue) error
}
