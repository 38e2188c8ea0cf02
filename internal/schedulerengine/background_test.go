package schedulerengine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"gitlab.com/bhajan-roster.net/internal/adapter/logging"
	memorystore "gitlab.com/bhajan-roster.net/internal/adapter/memory/submissionstore"
	"gitlab.com/bhajan-roster.net/internal/config"
	"gitlab.com/bhajan-roster.net/internal/core/services/allocator"
	"gitlab.com/bhajan-roster.net/internal/core/services/ordering"
	"gitlab.com/bhajan-roster.net/internal/core/services/session"
	"gitlab.com/bhajan-roster.net/internal/core/services/summary"
	"gitlab.com/bhajan-roster.net/internal/domain"
)

func TestNextSessionDate(t *testing.T) {
	tests := []struct {
		now  string
		want domain.SessionDate
	}{
		{"2024-06-03", "2024-06-06"}, // Monday
		{"2024-06-06", "2024-06-06"}, // Thursday itself
		{"2024-06-07", "2024-06-13"}, // Friday
	}
	for _, tt := range tests {
		now, err := time.Parse("2006-01-02", tt.now)
		require.NoError(t, err)
		assert.Equal(t, tt.want, NextSessionDate(now.Add(18*time.Hour), time.Thursday), tt.now)
	}
}

func newSessionService() *session.SessionService {
	catalog := domain.DefaultCatalog()
	logger := logging.NewNopLogger()
	store := memorystore.New()
	return session.NewSessionService(
		store,
		allocator.NewSlotAllocator(store, catalog, logger),
		ordering.NewEngine(catalog, domain.DefaultTempoRanking(), language.English),
		summary.NewBuilder(catalog),
		catalog,
		logger,
	)
}

func TestReportOpenSlots(t *testing.T) {
	svc := newSessionService()
	_, err := svc.Submit(context.Background(), "2024-06-06", "Ganesha", domain.SubmissionData{SingerName: "Amy", Title: "Gajanana", Speed: "slow"})
	require.NoError(t, err)

	engine := NewSchedulerEngine(&config.ScheduleConfig{SessionWeekday: time.Thursday, ReportInterval: time.Hour}, svc, logging.NewNopLogger())
	engine.now = func() time.Time { return time.Date(2024, 6, 4, 12, 0, 0, 0, time.UTC) }

	open := engine.ReportOpenSlots(context.Background())
	assert.Len(t, open, 8)
	assert.NotContains(t, open, "Ganesha")
	assert.Equal(t, "Guru", open[0])
}

func TestRunStopsWithContext(t *testing.T) {
	engine := NewSchedulerEngine(&config.ScheduleConfig{SessionWeekday: time.Thursday, ReportInterval: time.Millisecond}, newSessionService(), logging.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- engine.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after the context ended")
	}
}
