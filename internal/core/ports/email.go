package ports

import "context"

// EmailClient defines the interface for the outbound transactional email
// transport. Implementations must treat any non-2xx response or timeout as a
// send failure.
type EmailClient interface {
	Send(ctx context.Context, to, subject, textBody, htmlBody string) error
}
