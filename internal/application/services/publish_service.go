package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/paperpress/newsletter/internal/core/domain/newsletter"
	"github.com/paperpress/newsletter/internal/core/domain/subscriber"
	"github.com/paperpress/newsletter/internal/core/ports"
)

// PublishService broadcasts newsletter issues to confirmed subscribers.
type PublishService struct {
	subscribers ports.SubscriberRepository
	email       ports.EmailClient
	logger      *logrus.Logger
}

// NewPublishService creates a new publish service.
func NewPublishService(subscribers ports.SubscriberRepository, email ports.EmailClient, logger *logrus.Logger) ports.PublishService {
	return &PublishService{
		subscribers: subscribers,
		email:       email,
		logger:      logger,
	}
}

// Publish sends the issue to every confirmed subscriber. A stored email that
// no longer parses is logged and skipped; a send failure aborts the whole
// broadcast so the caller can retry it as a unit.
func (s *PublishService) Publish(ctx context.Context, issue *newsletter.Issue) error {
	emails, err := s.subscribers.ListConfirmedEmails(ctx)
	if err != nil {
		return fmt.Errorf("list confirmed subscribers: %w", err)
	}

	for _, stored := range emails {
		addr, err := subscriber.ParseEmail(stored)
		if err != nil {
			if s.logger != nil {
				s.logger.WithFields(logrus.Fields{"email": stored}).WithError(err).Warn("skipping confirmed subscriber with invalid stored email")
			}
			continue
		}

		if err := s.email.Send(ctx, addr.String(), issue.Title, issue.Content.Text, issue.Content.HTML); err != nil {
			return fmt.Errorf("send newsletter issue to %s: %w", addr, err)
		}
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"title": issue.Title, "recipients": len(emails)}).Info("newsletter issue published")
	}

	return nil
}
