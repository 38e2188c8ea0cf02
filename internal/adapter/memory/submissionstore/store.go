// Package submissionstore keeps submissions in process memory.
package submissionstore

import (
	"context"
	"sync"

	"gitlab.com/bhajan-roster.net/internal/core/ports/secondary"
	"gitlab.com/bhajan-roster.net/internal/domain"
)

var _ secondary.SubmissionStore = (*Store)(nil)

type slotKey struct {
	date  domain.SessionDate
	deity string
}

// Store is a mutex-guarded map keyed by (session date, deity key).
type Store struct {
	mu     sync.RWMutex
	slots  map[slotKey]*domain.Submission
	byDate map[domain.SessionDate][]*domain.Submission
}

func New() *Store {
	return &Store{
		slots:  make(map[slotKey]*domain.Submission),
		byDate: make(map[domain.SessionDate][]*domain.Submission),
	}
}

func (s *Store) InsertIfAbsent(ctx context.Context, sub *domain.Submission) (secondary.InsertResult, error) {
	if err := ctx.Err(); err != nil {
		return secondary.InsertResult{}, err
	}
	key := slotKey{date: sub.SessionDate, deity: domain.DeityKey(sub.Deity)}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.slots[key]; ok {
		return secondary.InsertResult{Existing: clone(existing)}, nil
	}
	stored := clone(sub)
	s.slots[key] = stored
	s.byDate[sub.SessionDate] = append(s.byDate[sub.SessionDate], stored)
	return secondary.InsertResult{Inserted: true}, nil
}

func (s *Store) FindByKey(ctx context.Context, date domain.SessionDate, deity string) (*domain.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sub, ok := s.slots[slotKey{date: date, deity: domain.DeityKey(deity)}]; ok {
		return clone(sub), nil
	}
	return nil, nil
}

// FindAllByDate returns the session's submissions in insertion order.
func (s *Store) FindAllByDate(ctx context.Context, date domain.SessionDate) ([]*domain.Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.byDate[date]
	out := make([]*domain.Submission, 0, len(stored))
	for _, sub := range stored {
		out = append(out, clone(sub))
	}
	return out, nil
}

// Len is the total number of stored submissions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

func clone(sub *domain.Submission) *domain.Submission {
	c := *sub
	if sub.PartnerName != nil {
		p := *sub.PartnerName
		c.PartnerName = &p
	}
	return &c
}
