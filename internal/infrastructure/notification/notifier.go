// Package notification delivers best-effort email notifications to the
// advising staff. Delivery failures are logged by callers and never fail the
// originating request.
package notification

import "context"

// TicketNotification carries the fields rendered into the staff email.
type TicketNotification struct {
	TicketID    uint
	Subject     string
	Department  string
	AuthorName  string
	AuthorEmail string
}

// Notifier sends staff notifications about ticket activity.
type Notifier interface {
	NotifyTicketSubmitted(ctx context.Context, recipients []string, n TicketNotification) error
}
