package email

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mrz1836/postmark"
	"github.com/sirupsen/logrus"

	"github.com/paperpress/newsletter/internal/core/domain/subscriber"
	"github.com/paperpress/newsletter/internal/core/ports"
)

// Config holds email client configuration.
type Config struct {
	// ServerToken authenticates requests against the Postmark API.
	ServerToken string
	// BaseURL is the root of the email API. Tests point it at a local
	// capture server.
	BaseURL string
	// SenderEmail is the From address of every outbound email.
	SenderEmail string
	// SendTimeout bounds each outbound request; expiry counts as a send
	// failure.
	SendTimeout time.Duration
}

// Client sends transactional email through Postmark.
type Client struct {
	client *postmark.Client
	config *Config
	logger *logrus.Logger
}

// NewClient creates a new email client.
func NewClient(config *Config, logger *logrus.Logger) (ports.EmailClient, error) {
	if config.ServerToken == "" {
		return nil, fmt.Errorf("email client: server token is required")
	}
	if _, err := subscriber.ParseEmail(config.SenderEmail); err != nil {
		return nil, fmt.Errorf("email client: invalid sender address: %w", err)
	}

	pm := postmark.NewClient(config.ServerToken, "")
	if config.BaseURL != "" {
		pm.BaseURL = strings.TrimSuffix(config.BaseURL, "/")
	}
	if config.SendTimeout > 0 {
		pm.HTTPClient = &http.Client{Timeout: config.SendTimeout}
	}

	return &Client{
		client: pm,
		config: config,
		logger: logger,
	}, nil
}

// Send performs one outbound POST to the email API. Any transport error,
// timeout, or API-level error code is a send failure.
func (c *Client) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:     c.config.SenderEmail,
		To:       to,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
	if err != nil {
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{"to": to, "subject": subject}).WithError(err).Error("failed to send email")
		}
		return fmt.Errorf("send email: %w", err)
	}
	if resp.ErrorCode > 0 {
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{"to": to, "subject": subject, "error_code": resp.ErrorCode}).Error("email API rejected send")
		}
		return fmt.Errorf("send email: postmark error %d: %s", resp.ErrorCode, resp.Message)
	}

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{"to": to, "subject": subject, "message_id": resp.MessageID}).Info("email sent")
	}

	return nil
}
