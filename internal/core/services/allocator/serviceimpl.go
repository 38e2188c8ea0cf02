package allocator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gitlab.com/bhajan-roster.net/internal/core/ports/primary"
	"gitlab.com/bhajan-roster.net/internal/core/ports/secondary"
	"gitlab.com/bhajan-roster.net/internal/domain"
	"gitlab.com/bhajan-roster.net/internal/static/errs"
)

var _ ISlotAllocator = (*SlotAllocator)(nil)

// SlotAllocator enforces one submission per (session date, deity).
type SlotAllocator struct {
	store   secondary.SubmissionStore
	catalog domain.Catalog
	logger  primary.Logger
	now     func() time.Time
}

// NewSlotAllocator creates a new slot allocator
func NewSlotAllocator(store secondary.SubmissionStore, catalog domain.Catalog, logger primary.Logger) *SlotAllocator {
	return &SlotAllocator{
		store:   store,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// SetClock replaces the acceptance-time source.
func (s *SlotAllocator) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Submit claims a deity slot for a session
func (s *SlotAllocator) Submit(ctx context.Context, date domain.SessionDate, deity string, data domain.SubmissionData) (domain.SubmitOutcome, error) {
	sub, err := s.validate(date, deity, data)
	if err != nil {
		s.logger.Debug("Rejected invalid submission", "date", date, "deity", deity, "error", err)
		return domain.SubmitOutcome{}, err
	}

	existing, err := s.store.FindByKey(ctx, date, sub.Deity)
	if err != nil {
		s.logger.Error("Failed to look up slot", "date", date, "deity", sub.Deity, "error", err)
		return domain.SubmitOutcome{}, fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	if existing != nil {
		s.logger.Info("Slot already taken", "date", date, "deity", sub.Deity, "singer", existing.SingerName)
		return domain.SubmitOutcome{Accepted: false, Submission: existing}, nil
	}

	res, err := s.store.InsertIfAbsent(ctx, sub)
	if errors.Is(err, errs.ErrSlotConflict) {
		// another submitter committed between our lookup and insert
		return s.rejectWithWinner(ctx, date, sub.Deity)
	}
	if err != nil {
		s.logger.Error("Failed to store submission", "date", date, "deity", sub.Deity, "error", err)
		return domain.SubmitOutcome{}, fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	if !res.Inserted {
		if res.Existing == nil {
			return s.rejectWithWinner(ctx, date, sub.Deity)
		}
		s.logger.Info("Slot taken by concurrent submission", "date", date, "deity", sub.Deity, "singer", res.Existing.SingerName)
		return domain.SubmitOutcome{Accepted: false, Submission: res.Existing}, nil
	}

	s.logger.Info("Submission accepted", "id", sub.ID, "date", date, "deity", sub.Deity, "singer", sub.SingerName)
	return domain.SubmitOutcome{Accepted: true, Submission: sub}, nil
}

func (s *SlotAllocator) rejectWithWinner(ctx context.Context, date domain.SessionDate, deity string) (domain.SubmitOutcome, error) {
	winner, err := s.store.FindByKey(ctx, date, deity)
	if err != nil {
		s.logger.Error("Failed to re-read winning submission", "date", date, "deity", deity, "error", err)
		return domain.SubmitOutcome{}, fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	if winner == nil {
		return domain.SubmitOutcome{}, fmt.Errorf("%w: slot %s/%s reported taken but not found", errs.ErrStorageUnavailable, date, deity)
	}
	s.logger.Info("Slot taken by concurrent submission", "date", date, "deity", deity, "singer", winner.SingerName)
	return domain.SubmitOutcome{Accepted: false, Submission: winner}, nil
}

// validate runs every check that needs no store access and builds the candidate submission.
func (s *SlotAllocator) validate(date domain.SessionDate, deity string, data domain.SubmissionData) (*domain.Submission, error) {
	if date == "" {
		return nil, errs.ErrInvalidDate
	}
	info, _, ok := s.catalog.Lookup(deity)
	if !ok {
		return nil, errs.InvalidDeity(deity)
	}
	speed, ok := domain.ParseTempo(data.Speed)
	if !ok {
		return nil, errs.InvalidSpeed(data.Speed)
	}
	if strings.TrimSpace(data.SingerName) == "" {
		return nil, errs.MissingField("singerName")
	}
	if strings.TrimSpace(data.Title) == "" {
		return nil, errs.MissingField("title")
	}
	return domain.NewSubmission(date, info.Name, speed, data, s.now()), nil
}
