package mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/paperpress/newsletter/internal/core/domain/newsletter"
	"github.com/paperpress/newsletter/internal/core/domain/subscriber"
	"github.com/paperpress/newsletter/internal/core/domain/user"
)

// SubscriberRepositoryMock is a lightweight mock for SubscriberRepository
type SubscriberRepositoryMock struct {
	CreateWithTokenFn        func(ctx context.Context, sub *subscriber.Subscriber, token string) error
	GetSubscriberIDByTokenFn func(ctx context.Context, token string) (uuid.UUID, error)
	MarkConfirmedFn          func(ctx context.Context, id uuid.UUID) error
	ListConfirmedEmailsFn    func(ctx context.Context) ([]string, error)
}

func (m *SubscriberRepositoryMock) CreateWithToken(ctx context.Context, sub *subscriber.Subscriber, token string) error {
	if m.CreateWithTokenFn != nil {
		return m.CreateWithTokenFn(ctx, sub, token)
	}
	return nil
}
func (m *SubscriberRepositoryMock) GetSubscriberIDByToken(ctx context.Context, token string) (uuid.UUID, error) {
	if m.GetSubscriberIDByTokenFn != nil {
		return m.GetSubscriberIDByTokenFn(ctx, token)
	}
	return uuid.Nil, subscriber.ErrTokenNotFound
}
func (m *SubscriberRepositoryMock) MarkConfirmed(ctx context.Context, id uuid.UUID) error {
	if m.MarkConfirmedFn != nil {
		return m.MarkConfirmedFn(ctx, id)
	}
	return nil
}
func (m *SubscriberRepositoryMock) ListConfirmedEmails(ctx context.Context) ([]string, error) {
	if m.ListConfirmedEmailsFn != nil {
		return m.ListConfirmedEmailsFn(ctx)
	}
	return nil, nil
}

// UserRepositoryMock is a lightweight mock for UserRepository
type UserRepositoryMock struct {
	GetByUsernameFn func(ctx context.Context, username string) (*user.User, error)
}

func (m *UserRepositoryMock) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, user.ErrNotFound
}

// EmailClientMock is a lightweight mock for EmailClient. It records every
// send when no SendFn is provided.
type EmailClientMock struct {
	SendFn func(ctx context.Context, to, subject, textBody, htmlBody string) error
	Sent   []SentEmail
}

type SentEmail struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

func (m *EmailClientMock) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	if m.SendFn != nil {
		return m.SendFn(ctx, to, subject, textBody, htmlBody)
	}
	m.Sent = append(m.Sent, SentEmail{To: to, Subject: subject, TextBody: textBody, HTMLBody: htmlBody})
	return nil
}

// SubscriptionServiceMock is a lightweight mock for SubscriptionService
type SubscriptionServiceMock struct {
	SubscribeFn func(ctx context.Context, email subscriber.Email, name subscriber.Name) error
	ConfirmFn   func(ctx context.Context, token string) error
}

func (m *SubscriptionServiceMock) Subscribe(ctx context.Context, email subscriber.Email, name subscriber.Name) error {
	if m.SubscribeFn != nil {
		return m.SubscribeFn(ctx, email, name)
	}
	return nil
}
func (m *SubscriptionServiceMock) Confirm(ctx context.Context, token string) error {
	if m.ConfirmFn != nil {
		return m.ConfirmFn(ctx, token)
	}
	return nil
}

// PublishServiceMock is a lightweight mock for PublishService
type PublishServiceMock struct {
	PublishFn func(ctx context.Context, issue *newsletter.Issue) error
}

func (m *PublishServiceMock) Publish(ctx context.Context, issue *newsletter.Issue) error {
	if m.PublishFn != nil {
		return m.PublishFn(ctx, issue)
	}
	return nil
}

// AuthServiceMock is a lightweight mock for AuthService
type AuthServiceMock struct {
	ValidateCredentialsFn func(ctx context.Context, username, password string) (uuid.UUID, error)
}

func (m *AuthServiceMock) ValidateCredentials(ctx context.Context, username, password string) (uuid.UUID, error) {
	if m.ValidateCredentialsFn != nil {
		return m.ValidateCredentialsFn(ctx, username, password)
	}
	return uuid.Nil, fmt.Errorf("not configured")
}
