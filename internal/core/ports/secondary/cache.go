package secondary

import (
	"context"

	"gitlab.com/bhajan-roster.net/internal/domain"
)

// SessionCache holds the submissions of a session between writes.
type SessionCache interface {
	// GetSession returns the cached submissions and whether there was a hit.
	GetSession(ctx context.Context, date domain.SessionDate) ([]*domain.Submission, bool, error)
	SetSession(ctx context.Context, date domain.SessionDate, subs []*domain.Submission) error
	InvalidateSession(ctx context.Context, date domain.SessionDate) error
}
