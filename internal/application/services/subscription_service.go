package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/paperpress/newsletter/internal/core/domain/subscriber"
	"github.com/paperpress/newsletter/internal/core/ports"
)

// SubscriptionService implements the subscription workflow: durable sign-up
// with a confirmation token, confirmation-link email, and token redemption.
type SubscriptionService struct {
	subscribers ports.SubscriberRepository
	email       ports.EmailClient
	baseURL     string
	logger      *logrus.Logger
}

// NewSubscriptionService creates a new subscription service. baseURL is the
// public base URL of this application, used to build confirmation links.
func NewSubscriptionService(subscribers ports.SubscriberRepository, email ports.EmailClient, baseURL string, logger *logrus.Logger) ports.SubscriptionService {
	return &SubscriptionService{
		subscribers: subscribers,
		email:       email,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		logger:      logger,
	}
}

// Subscribe stores a new pending subscriber together with a fresh
// confirmation token, then emails the confirmation link. The storage write is
// atomic; a failed email send does not roll it back, the subscriber simply
// stays pending until the email is retried by signing up again.
func (s *SubscriptionService) Subscribe(ctx context.Context, email subscriber.Email, name subscriber.Name) error {
	sub := subscriber.New(email, name)

	token, err := subscriber.GenerateToken()
	if err != nil {
		return err
	}

	if err := s.subscribers.CreateWithToken(ctx, sub, token); err != nil {
		return fmt.Errorf("store new subscriber: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"subscriber_id": sub.ID, "email": sub.Email}).Info("new subscriber stored")
	}

	if err := s.sendConfirmationEmail(ctx, sub, token); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}

	return nil
}

// Confirm redeems a confirmation token, flipping the owning subscriber to
// confirmed. Redeeming the same token again re-applies the same status and
// succeeds.
func (s *SubscriptionService) Confirm(ctx context.Context, token string) error {
	id, err := s.subscribers.GetSubscriberIDByToken(ctx, token)
	if err != nil {
		return err
	}

	if err := s.subscribers.MarkConfirmed(ctx, id); err != nil {
		return fmt.Errorf("confirm subscriber: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"subscriber_id": id}).Info("subscriber confirmed")
	}

	return nil
}

func (s *SubscriptionService) sendConfirmationEmail(ctx context.Context, sub *subscriber.Subscriber, token string) error {
	link := fmt.Sprintf("%s/subscriptions/confirm?subscription_token=%s", s.baseURL, token)

	textBody := fmt.Sprintf(
		"Welcome to our newsletter!\nVisit %s to confirm your subscription.",
		link,
	)
	htmlBody := fmt.Sprintf(
		"Welcome to our newsletter!<br />Click <a href=\"%s\">here</a> to confirm your subscription.",
		link,
	)

	return s.email.Send(ctx, sub.Email, "Welcome!", textBody, htmlBody)
}
