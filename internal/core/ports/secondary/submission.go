package secondary

import (
	"context"

	"gitlab.com/bhajan-roster.net/internal/domain"
)

// InsertResult is the outcome of an atomic conditional insert.
// Exactly one of Inserted or Existing is set.
type InsertResult struct {
	Inserted bool
	Existing *domain.Submission
}

// SubmissionStore persists submissions keyed by (session date, deity).
type SubmissionStore interface {
	// InsertIfAbsent stores sub unless a submission already holds the same
	// (session date, deity) slot, ignoring deity case. It must be atomic with
	// respect to concurrent callers for the same slot.
	InsertIfAbsent(ctx context.Context, sub *domain.Submission) (InsertResult, error)

	// FindByKey returns the submission holding a slot, or nil.
	FindByKey(ctx context.Context, date domain.SessionDate, deity string) (*domain.Submission, error)

	// FindAllByDate returns every submission of a session in no particular order.
	FindAllByDate(ctx context.Context, date domain.SessionDate) ([]*domain.Submission, error)
}
