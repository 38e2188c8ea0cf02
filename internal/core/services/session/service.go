package session

import (
	"context"

	"gitlab.com/bhajan-roster.net/internal/domain"
)

// ISessionService is the planner-facing API over one session date.
type ISessionService interface {
	// Submit claims a single deity slot.
	Submit(ctx context.Context, date domain.SessionDate, deity string, data domain.SubmissionData) (domain.SubmitOutcome, error)

	// SubmitBatch claims several slots for one singer. Items are applied one
	// by one; an item whose slot is taken or which fails validation does not
	// undo the items accepted before it.
	SubmitBatch(ctx context.Context, date domain.SessionDate, singer domain.SubmissionData, items []domain.BatchItem) (domain.BatchResult, error)

	// ListForSession returns the submissions of a session in performance order.
	ListForSession(ctx context.Context, date domain.SessionDate) ([]domain.OrderedSubmission, error)

	// Summary reports the slot fill state of a session.
	Summary(ctx context.Context, date domain.SessionDate) (domain.SessionSummary, error)

	// Export renders the ordered session as shareable plain text.
	Export(ctx context.Context, date domain.SessionDate) (string, error)

	// Catalog returns the deity catalog in rank order.
	Catalog() []domain.DeityInfo
}
