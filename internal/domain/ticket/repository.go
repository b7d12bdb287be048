package ticket

import (
	"context"

	"atgs/internal/domain/user"
)

// WithAuthor pairs a ticket with its resolved author so callers can render
// listings without per-ticket lookups.
type WithAuthor struct {
	Ticket *Ticket
	Author *user.User
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	// ListVisibleTo returns the tickets the viewer may see, authors resolved,
	// ordered by status rank then last_updated descending then id.
	ListVisibleTo(ctx context.Context, viewer *user.User) ([]WithAuthor, error)
	Count(ctx context.Context) (int64, error)
}
