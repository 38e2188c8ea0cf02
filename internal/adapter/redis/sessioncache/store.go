package sessioncache

import (
	"context"

	"gitlab.com/bhajan-roster.net/internal/core/ports/primary"
	"gitlab.com/bhajan-roster.net/internal/core/ports/secondary"
	"gitlab.com/bhajan-roster.net/internal/domain"
)

var _ secondary.SubmissionStore = (*CachedStore)(nil)

// CachedStore serves FindAllByDate from a SessionCache and drops the cached
// session whenever a submission is inserted. Slot checks and inserts always
// go to the underlying store. Cache failures are logged and bypassed.
type CachedStore struct {
	next   secondary.SubmissionStore
	cache  secondary.SessionCache
	logger primary.Logger
}

func NewCachedStore(next secondary.SubmissionStore, cache secondary.SessionCache, logger primary.Logger) *CachedStore {
	return &CachedStore{
		next:   next,
		cache:  cache,
		logger: logger,
	}
}

func (s *CachedStore) InsertIfAbsent(ctx context.Context, sub *domain.Submission) (secondary.InsertResult, error) {
	res, err := s.next.InsertIfAbsent(ctx, sub)
	if err != nil || !res.Inserted {
		return res, err
	}
	if err := s.cache.InvalidateSession(ctx, sub.SessionDate); err != nil {
		s.logger.Warn("Failed to invalidate session cache", "date", sub.SessionDate, "error", err)
	}
	return res, nil
}

func (s *CachedStore) FindByKey(ctx context.Context, date domain.SessionDate, deity string) (*domain.Submission, error) {
	return s.next.FindByKey(ctx, date, deity)
}

func (s *CachedStore) FindAllByDate(ctx context.Context, date domain.SessionDate) ([]*domain.Submission, error) {
	subs, hit, err := s.cache.GetSession(ctx, date)
	if err != nil {
		s.logger.Warn("Session cache read failed", "date", date, "error", err)
	}
	if hit {
		s.logger.Debug("Session cache hit", "date", date)
		return subs, nil
	}

	subs, err = s.next.FindAllByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetSession(ctx, date, subs); err != nil {
		s.logger.Warn("Failed to fill session cache", "date", date, "error", err)
	}
	return subs, nil
}
