package service

import "context"

// Mailer defines the interface for transactional email delivery.
// Implementations must not block on provider retries; a failed send is
// reported to the caller, which decides whether the event is retried.
type Mailer interface {
	// SendApplicationReceived notifies an employer that a seeker applied to their posting.
	SendApplicationReceived(ctx context.Context, toEmail, seekerName, jobTitle string) error

	// SendApplicationStatusChanged notifies a seeker that an employer moved their
	// application to a new status.
	SendApplicationStatusChanged(ctx context.Context, toEmail, jobTitle, status string) error
}
