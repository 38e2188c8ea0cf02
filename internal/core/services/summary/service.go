package summary

import "gitlab.com/bhajan-roster.net/internal/domain"

// ISummaryBuilder reports the fill state of a session's deity slots.
type ISummaryBuilder interface {
	Summarize(date domain.SessionDate, subs []*domain.Submission) domain.SessionSummary
}
