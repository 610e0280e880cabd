package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	impl "github.com/paperpress/newsletter/internal/application/services"
	"github.com/paperpress/newsletter/internal/core/domain/subscriber"
	tmocks "github.com/paperpress/newsletter/test/mocks"
)

func mustEmail(t *testing.T, raw string) subscriber.Email {
	t.Helper()
	email, err := subscriber.ParseEmail(raw)
	require.NoError(t, err)
	return email
}

func mustName(t *testing.T, raw string) subscriber.Name {
	t.Helper()
	name, err := subscriber.ParseName(raw)
	require.NoError(t, err)
	return name
}

func TestSubscribe_StoresSubscriberAndSendsConfirmationLink(t *testing.T) {
	var storedSub *subscriber.Subscriber
	var storedToken string
	repo := &tmocks.SubscriberRepositoryMock{
		CreateWithTokenFn: func(ctx context.Context, sub *subscriber.Subscriber, token string) error {
			storedSub = sub
			storedToken = token
			return nil
		},
	}
	emailClient := &tmocks.EmailClientMock{}

	svc := impl.NewSubscriptionService(repo, emailClient, "https://newsletter.example.com", logrus.New())
	err := svc.Subscribe(context.Background(), mustEmail(t, "ursula_le_guin@gmail.com"), mustName(t, "le guin"))
	require.NoError(t, err)

	require.NotNil(t, storedSub)
	assert.Equal(t, "ursula_le_guin@gmail.com", storedSub.Email)
	assert.Equal(t, "le guin", storedSub.Name)
	assert.Equal(t, subscriber.StatusPendingConfirmation, storedSub.Status)
	assert.NoError(t, subscriber.ValidateToken(storedToken))

	require.Len(t, emailClient.Sent, 1)
	sent := emailClient.Sent[0]
	assert.Equal(t, "ursula_le_guin@gmail.com", sent.To)
	link := fmt.Sprintf("https://newsletter.example.com/subscriptions/confirm?subscription_token=%s", storedToken)
	assert.Contains(t, sent.TextBody, link)
	assert.Contains(t, sent.HTMLBody, link)
}

func TestSubscribe_StorageFailureSendsNoEmail(t *testing.T) {
	repo := &tmocks.SubscriberRepositoryMock{
		CreateWithTokenFn: func(ctx context.Context, sub *subscriber.Subscriber, token string) error {
			return errors.New("connection reset")
		},
	}
	emailClient := &tmocks.EmailClientMock{}

	svc := impl.NewSubscriptionService(repo, emailClient, "https://newsletter.example.com", nil)
	err := svc.Subscribe(context.Background(), mustEmail(t, "a@b.com"), mustName(t, "a"))

	assert.Error(t, err)
	assert.Empty(t, emailClient.Sent)
}

func TestSubscribe_EmailFailureAfterStore(t *testing.T) {
	stored := false
	repo := &tmocks.SubscriberRepositoryMock{
		CreateWithTokenFn: func(ctx context.Context, sub *subscriber.Subscriber, token string) error {
			stored = true
			return nil
		},
	}
	emailClient := &tmocks.EmailClientMock{
		SendFn: func(ctx context.Context, to, subject, textBody, htmlBody string) error {
			return errors.New("email API is down")
		},
	}

	svc := impl.NewSubscriptionService(repo, emailClient, "https://newsletter.example.com", nil)
	err := svc.Subscribe(context.Background(), mustEmail(t, "a@b.com"), mustName(t, "a"))

	// The email failure surfaces as an error while the stored row stays.
	assert.Error(t, err)
	assert.True(t, stored)
}

func TestConfirm_MarksSubscriberConfirmed(t *testing.T) {
	subscriberID := uuid.New()
	var confirmedID uuid.UUID
	repo := &tmocks.SubscriberRepositoryMock{
		GetSubscriberIDByTokenFn: func(ctx context.Context, token string) (uuid.UUID, error) {
			return subscriberID, nil
		},
		MarkConfirmedFn: func(ctx context.Context, id uuid.UUID) error {
			confirmedID = id
			return nil
		},
	}

	svc := impl.NewSubscriptionService(repo, &tmocks.EmailClientMock{}, "https://newsletter.example.com", logrus.New())
	err := svc.Confirm(context.Background(), "aB3dE5fG7hJ9kL1mN3pQ5rS7t")

	require.NoError(t, err)
	assert.Equal(t, subscriberID, confirmedID)
}

func TestConfirm_UnknownToken(t *testing.T) {
	repo := &tmocks.SubscriberRepositoryMock{}

	svc := impl.NewSubscriptionService(repo, &tmocks.EmailClientMock{}, "https://newsletter.example.com", nil)
	err := svc.Confirm(context.Background(), "aB3dE5fG7hJ9kL1mN3pQ5rS7t")

	assert.ErrorIs(t, err, subscriber.ErrTokenNotFound)
}

func TestConfirm_Idempotent(t *testing.T) {
	subscriberID := uuid.New()
	confirmCalls := 0
	repo := &tmocks.SubscriberRepositoryMock{
		GetSubscriberIDByTokenFn: func(ctx context.Context, token string) (uuid.UUID, error) {
			return subscriberID, nil
		},
		MarkConfirmedFn: func(ctx context.Context, id uuid.UUID) error {
			confirmCalls++
			return nil
		},
	}

	svc := impl.NewSubscriptionService(repo, &tmocks.EmailClientMock{}, "https://newsletter.example.com", nil)
	require.NoError(t, svc.Confirm(context.Background(), "aB3dE5fG7hJ9kL1mN3pQ5rS7t"))
	require.NoError(t, svc.Confirm(context.Background(), "aB3dE5fG7hJ9kL1mN3pQ5rS7t"))

	assert.Equal(t, 2, confirmCalls)
}
