package session

import (
	"context"
	"errors"
	"fmt"

	"gitlab.com/bhajan-roster.net/internal/core/ports/primary"
	"gitlab.com/bhajan-roster.net/internal/core/ports/secondary"
	"gitlab.com/bhajan-roster.net/internal/core/services/allocator"
	"gitlab.com/bhajan-roster.net/internal/core/services/ordering"
	"gitlab.com/bhajan-roster.net/internal/core/services/summary"
	"gitlab.com/bhajan-roster.net/internal/domain"
	"gitlab.com/bhajan-roster.net/internal/static/errs"
)

var _ ISessionService = (*SessionService)(nil)

// SessionService wires the allocator, ordering engine and summary builder
// to one submission store.
type SessionService struct {
	store     secondary.SubmissionStore
	allocator allocator.ISlotAllocator
	orderer   ordering.IOrderingEngine
	summaries summary.ISummaryBuilder
	catalog   domain.Catalog
	logger    primary.Logger
}

// NewSessionService creates a new session service
func NewSessionService(
	store secondary.SubmissionStore,
	alloc allocator.ISlotAllocator,
	orderer ordering.IOrderingEngine,
	summaries summary.ISummaryBuilder,
	catalog domain.Catalog,
	logger primary.Logger,
) *SessionService {
	return &SessionService{
		store:     store,
		allocator: alloc,
		orderer:   orderer,
		summaries: summaries,
		catalog:   catalog,
		logger:    logger,
	}
}

func (s *SessionService) Submit(ctx context.Context, date domain.SessionDate, deity string, data domain.SubmissionData) (domain.SubmitOutcome, error) {
	return s.allocator.Submit(ctx, date, deity, data)
}

func (s *SessionService) SubmitBatch(ctx context.Context, date domain.SessionDate, singer domain.SubmissionData, items []domain.BatchItem) (domain.BatchResult, error) {
	s.logger.Info("Processing batch submission", "date", date, "singer", singer.SingerName, "items", len(items))

	result := domain.BatchResult{Results: make([]domain.BatchItemResult, 0, len(items))}
	for _, item := range items {
		data := domain.SubmissionData{
			SingerName:  singer.SingerName,
			Gender:      singer.Gender,
			PartnerName: singer.PartnerName,
			Title:       item.Title,
			Scale:       item.Scale,
			Speed:       item.Speed,
		}
		itemResult := domain.BatchItemResult{Deity: item.Deity}

		outcome, err := s.allocator.Submit(ctx, date, item.Deity, data)
		if err != nil {
			if ve, ok := errs.IsValidation(err); ok {
				itemResult.Error = ve.Error()
				itemResult.Kind = ve.KindName()
				result.Results = append(result.Results, itemResult)
				continue
			}
			// storage failures end the batch; earlier items stay accepted
			s.logger.Error("Batch submission aborted", "date", date, "deity", item.Deity, "error", err)
			return result, fmt.Errorf("batch item %q: %w", item.Deity, err)
		}

		if outcome.Accepted {
			result.Accepted++
			itemResult.Accepted = true
			itemResult.Created = outcome.Submission
		} else {
			itemResult.Existing = outcome.Submission
			itemResult.Kind = "SlotTaken"
		}
		result.Results = append(result.Results, itemResult)
	}

	s.logger.Info("Batch submission processed", "date", date, "accepted", result.Accepted, "items", len(items))
	return result, nil
}

func (s *SessionService) ListForSession(ctx context.Context, date domain.SessionDate) ([]domain.OrderedSubmission, error) {
	subs, err := s.load(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.orderer.Order(subs), nil
}

func (s *SessionService) Summary(ctx context.Context, date domain.SessionDate) (domain.SessionSummary, error) {
	subs, err := s.load(ctx, date)
	if err != nil {
		return domain.SessionSummary{}, err
	}
	return s.summaries.Summarize(date, subs), nil
}

func (s *SessionService) Export(ctx context.Context, date domain.SessionDate) (string, error) {
	subs, err := s.load(ctx, date)
	if err != nil {
		return "", err
	}
	return RenderText(date, s.orderer.Order(subs), s.summaries.Summarize(date, subs)), nil
}

func (s *SessionService) Catalog() []domain.DeityInfo {
	return s.catalog.Deities()
}

func (s *SessionService) load(ctx context.Context, date domain.SessionDate) ([]*domain.Submission, error) {
	if date == "" {
		return nil, errs.ErrInvalidDate
	}
	s.logger.Debug("Loading session", "date", date)
	subs, err := s.store.FindAllByDate(ctx, date)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		s.logger.Error("Failed to load session", "date", date, "error", err)
		return nil, fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	return subs, nil
}
