package allocator

import (
	"context"

	"gitlab.com/bhajan-roster.net/internal/domain"
)

// ISlotAllocator decides whether a submission may claim a deity slot.
type ISlotAllocator interface {
	// Submit validates the request and claims the (date, deity) slot if it is free.
	// A taken slot is reported through SubmitOutcome.Accepted == false, not as an error.
	Submit(ctx context.Context, date domain.SessionDate, deity string, data domain.SubmissionData) (domain.SubmitOutcome, error)
}
