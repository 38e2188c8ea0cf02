package ordering

import "gitlab.com/bhajan-roster.net/internal/domain"

// IOrderingEngine produces the performance order of a session.
type IOrderingEngine interface {
	// Order sorts submissions by deity rank, tempo rank and singer name and
	// numbers them from 1. The input slice is not modified.
	Order(subs []*domain.Submission) []domain.OrderedSubmission
}
