package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	impl "github.com/paperpress/newsletter/internal/application/services"
	"github.com/paperpress/newsletter/internal/core/domain/newsletter"
	tmocks "github.com/paperpress/newsletter/test/mocks"
)

func testIssue() *newsletter.Issue {
	return &newsletter.Issue{
		Title: "Newsletter title",
		Content: newsletter.Content{
			HTML: "<p>Newsletter body</p>",
			Text: "Newsletter body",
		},
	}
}

func TestPublish_SendsToEveryConfirmedSubscriber(t *testing.T) {
	repo := &tmocks.SubscriberRepositoryMock{
		ListConfirmedEmailsFn: func(ctx context.Context) ([]string, error) {
			return []string{"one@example.com", "two@example.com"}, nil
		},
	}
	emailClient := &tmocks.EmailClientMock{}

	svc := impl.NewPublishService(repo, emailClient, logrus.New())
	err := svc.Publish(context.Background(), testIssue())

	require.NoError(t, err)
	require.Len(t, emailClient.Sent, 2)
	assert.Equal(t, "one@example.com", emailClient.Sent[0].To)
	assert.Equal(t, "two@example.com", emailClient.Sent[1].To)
	assert.Equal(t, "Newsletter title", emailClient.Sent[0].Subject)
	assert.Equal(t, "Newsletter body", emailClient.Sent[0].TextBody)
	assert.Equal(t, "<p>Newsletter body</p>", emailClient.Sent[0].HTMLBody)
}

func TestPublish_SkipsInvalidStoredEmail(t *testing.T) {
	repo := &tmocks.SubscriberRepositoryMock{
		ListConfirmedEmailsFn: func(ctx context.Context) ([]string, error) {
			return []string{"not-an-email", "ok@example.com"}, nil
		},
	}
	emailClient := &tmocks.EmailClientMock{}

	svc := impl.NewPublishService(repo, emailClient, logrus.New())
	err := svc.Publish(context.Background(), testIssue())

	require.NoError(t, err)
	require.Len(t, emailClient.Sent, 1)
	assert.Equal(t, "ok@example.com", emailClient.Sent[0].To)
}

func TestPublish_SendFailureAbortsBroadcast(t *testing.T) {
	repo := &tmocks.SubscriberRepositoryMock{
		ListConfirmedEmailsFn: func(ctx context.Context) ([]string, error) {
			return []string{"one@example.com", "two@example.com"}, nil
		},
	}
	sendCalls := 0
	emailClient := &tmocks.EmailClientMock{
		SendFn: func(ctx context.Context, to, subject, textBody, htmlBody string) error {
			sendCalls++
			return errors.New("email API is down")
		},
	}

	svc := impl.NewPublishService(repo, emailClient, nil)
	err := svc.Publish(context.Background(), testIssue())

	assert.Error(t, err)
	assert.Equal(t, 1, sendCalls)
}

func TestPublish_ListFailure(t *testing.T) {
	repo := &tmocks.SubscriberRepositoryMock{
		ListConfirmedEmailsFn: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("connection reset")
		},
	}
	emailClient := &tmocks.EmailClientMock{}

	svc := impl.NewPublishService(repo, emailClient, nil)
	err := svc.Publish(context.Background(), testIssue())

	assert.Error(t, err)
	assert.Empty(t, emailClient.Sent)
}
