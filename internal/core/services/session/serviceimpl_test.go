package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"gitlab.com/bhajan-roster.net/internal/adapter/logging"
	memorystore "gitlab.com/bhajan-roster.net/internal/adapter/memory/submissionstore"
	"gitlab.com/bhajan-roster.net/internal/core/ports/secondary"
	"gitlab.com/bhajan-roster.net/internal/core/services/allocator"
	"gitlab.com/bhajan-roster.net/internal/core/services/ordering"
	"gitlab.com/bhajan-roster.net/internal/core/services/summary"
	"gitlab.com/bhajan-roster.net/internal/domain"
	"gitlab.com/bhajan-roster.net/internal/static/errs"
)

const date = domain.SessionDate("2024-06-06")

func newService(t *testing.T, store secondary.SubmissionStore) *SessionService {
	t.Helper()
	catalog := domain.DefaultCatalog()
	logger := logging.NewNopLogger()
	alloc := allocator.NewSlotAllocator(store, catalog, logger)
	tick := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	alloc.SetClock(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	})
	return NewSessionService(
		store,
		alloc,
		ordering.NewEngine(catalog, domain.DefaultTempoRanking(), language.English),
		summary.NewBuilder(catalog),
		catalog,
		logger,
	)
}

func TestSessionScenario(t *testing.T) {
	svc := newService(t, memorystore.New())
	ctx := context.Background()

	amy, err := svc.Submit(ctx, date, "Sai", domain.SubmissionData{SingerName: "Amy", Title: "Sai Bhajan", Speed: "slow"})
	require.NoError(t, err)
	assert.True(t, amy.Accepted)

	zoe, err := svc.Submit(ctx, date, "Sai", domain.SubmissionData{SingerName: "Zoe", Title: "Other", Speed: "slow"})
	require.NoError(t, err)
	assert.False(t, zoe.Accepted)
	assert.Equal(t, "Amy", zoe.Submission.SingerName)

	bob, err := svc.Submit(ctx, date, "Rama", domain.SubmissionData{SingerName: "Bob", Title: "Rama Bhajan", Speed: "fast"})
	require.NoError(t, err)
	assert.True(t, bob.Accepted)

	list, err := svc.ListForSession(ctx, date)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Amy", list[0].SingerName)
	assert.Equal(t, 1, list[0].Position)
	assert.Equal(t, "Bob", list[1].SingerName)
	assert.Equal(t, 2, list[1].Position)

	sum, err := svc.Summary(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.MandatoryFilled)
	assert.Equal(t, 0, sum.OptionalFilled)
}

func TestSubmitBatchIsBestEffort(t *testing.T) {
	svc := newService(t, memorystore.New())
	ctx := context.Background()

	_, err := svc.Submit(ctx, date, "Guru", domain.SubmissionData{SingerName: "Zoe", Title: "Guru Bhajan", Speed: "medium"})
	require.NoError(t, err)

	res, err := svc.SubmitBatch(ctx, date, domain.SubmissionData{SingerName: "Amy", PartnerName: "Raj"}, []domain.BatchItem{
		{Deity: "Ganesha", Title: "Gajanana", Speed: "slow"},
		{Deity: "Guru", Title: "Guru Vandana", Speed: "slow"},
		{Deity: "Ayyappa", Title: "Swamiye", Speed: "slow"},
		{Deity: "Mata", Title: "", Speed: "slow"},
		{Deity: "Hanuman", Title: "Anjaneya", Speed: "fast"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Accepted)
	require.Len(t, res.Results, 5)

	assert.True(t, res.Results[0].Accepted)
	require.NotNil(t, res.Results[0].Created)
	require.NotNil(t, res.Results[0].Created.PartnerName)
	assert.Equal(t, "Raj", *res.Results[0].Created.PartnerName)

	assert.False(t, res.Results[1].Accepted)
	assert.Equal(t, "SlotTaken", res.Results[1].Kind)
	assert.Equal(t, "Zoe", res.Results[1].Existing.SingerName)

	assert.Equal(t, "InvalidDeity", res.Results[2].Kind)
	assert.Equal(t, "MissingField", res.Results[3].Kind)
	assert.True(t, res.Results[4].Accepted)

	sum, err := svc.Summary(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.MandatoryFilled)
	assert.Equal(t, 1, sum.OptionalFilled)
}

func TestSubmitBatchStopsOnStorageFailure(t *testing.T) {
	store := &flakyStore{Store: memorystore.New(), failAfter: 1}
	svc := newService(t, store)

	res, err := svc.SubmitBatch(context.Background(), date, domain.SubmissionData{SingerName: "Amy"}, []domain.BatchItem{
		{Deity: "Ganesha", Title: "Gajanana", Speed: "slow"},
		{Deity: "Guru", Title: "Guru Vandana", Speed: "slow"},
		{Deity: "Mata", Title: "Amba", Speed: "slow"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	assert.Equal(t, 1, res.Accepted)
	assert.Len(t, res.Results, 1)
	assert.Equal(t, 1, store.Len())
}

func TestListRejectsEmptyDate(t *testing.T) {
	svc := newService(t, memorystore.New())
	_, err := svc.ListForSession(context.Background(), "")
	assert.ErrorIs(t, err, errs.ErrInvalidDate)
}

func TestExport(t *testing.T) {
	svc := newService(t, memorystore.New())
	ctx := context.Background()

	_, err := svc.Submit(ctx, date, "Rama", domain.SubmissionData{SingerName: "Bob", PartnerName: "Cara", Title: "Raghupati", Scale: "C#", Speed: "fast"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, date, "Sai", domain.SubmissionData{SingerName: "Amy", Title: "Sai Ram", Speed: "slow"})
	require.NoError(t, err)

	text, err := svc.Export(ctx, date)
	require.NoError(t, err)

	want := "Bhajan roster - Thursday, 06 Jun 2024\n" +
		"Mandatory slots filled: 2/9, optional: 0/1\n" +
		"\n" +
		"1. Sai - Sai Ram (Amy) - Scale: Not specified - slow\n" +
		"2. Rama - Raghupati (Bob & Cara) - Scale: C# - fast\n" +
		"\n" +
		"Still open: Ganesha, Guru, Mata, SarvaDharma, Shiva, Krishna, Vitthala\n"
	assert.Equal(t, want, text)
}

func TestExportEmptySession(t *testing.T) {
	svc := newService(t, memorystore.New())
	text, err := svc.Export(context.Background(), date)
	require.NoError(t, err)
	assert.Contains(t, text, "No songs submitted yet.")
	assert.Contains(t, text, "Mandatory slots filled: 0/9")
}

func TestCatalogReturnsCopy(t *testing.T) {
	svc := newService(t, memorystore.New())
	deities := svc.Catalog()
	require.NotEmpty(t, deities)
	deities[0].Name = "changed"
	assert.Equal(t, "Ganesha", svc.Catalog()[0].Name)
}

// flakyStore accepts failAfter inserts and then reports the backend as down.
type flakyStore struct {
	*memorystore.Store
	failAfter int
	inserts   int
}

func (s *flakyStore) InsertIfAbsent(ctx context.Context, sub *domain.Submission) (secondary.InsertResult, error) {
	if s.inserts >= s.failAfter {
		return secondary.InsertResult{}, errors.New("connection reset")
	}
	s.inserts++
	return s.Store.InsertIfAbsent(ctx, sub)
}
