package schedulerengine

import (
	"context"
	"strings"
	"time"

	"gitlab.com/bhajan-roster.net/internal/config"
	"gitlab.com/bhajan-roster.net/internal/core/ports/primary"
	"gitlab.com/bhajan-roster.net/internal/core/services/session"
	"gitlab.com/bhajan-roster.net/internal/domain"
)

// SchedulerEngine periodically reports which mandatory slots of the next
// session are still open.
type SchedulerEngine struct {
	SchedulerCfg   *config.ScheduleConfig
	sessionService session.ISessionService
	logger         primary.Logger
	now            func() time.Time
}

func NewSchedulerEngine(
	SchedulerCfg *config.ScheduleConfig,
	sessionService session.ISessionService,
	logger primary.Logger,
) *SchedulerEngine {
	return &SchedulerEngine{
		SchedulerCfg:   SchedulerCfg,
		sessionService: sessionService,
		logger:         logger,
		now:            time.Now,
	}
}

// Run reports once immediately and then on every tick until ctx is done.
func (s *SchedulerEngine) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.SchedulerCfg.ReportInterval)
	defer ticker.Stop()

	s.ReportOpenSlots(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.ReportOpenSlots(ctx)
		}
	}
}

// ReportOpenSlots logs the fill state of the upcoming session and returns
// the mandatory deities nobody has claimed yet.
func (s *SchedulerEngine) ReportOpenSlots(ctx context.Context) []string {
	date := NextSessionDate(s.now(), s.SchedulerCfg.SessionWeekday)
	summary, err := s.sessionService.Summary(ctx, date)
	if err != nil {
		s.logger.Error("Failed to summarise upcoming session", "date", date, "error", err)
		return nil
	}

	var open []string
	for _, slot := range summary.Slots {
		if slot.Mandatory && !slot.Taken {
			open = append(open, slot.Deity)
		}
	}
	if len(open) == 0 {
		s.logger.Info("All mandatory slots filled", "date", date)
		return nil
	}
	s.logger.Info("Open mandatory slots",
		"date", date,
		"filled", summary.MandatoryFilled,
		"total", summary.MandatoryTotal,
		"open", strings.Join(open, ", "))
	return open
}

// NextSessionDate is the first date on or after now that falls on weekday.
func NextSessionDate(now time.Time, weekday time.Weekday) domain.SessionDate {
	days := (int(weekday) - int(now.Weekday()) + 7) % 7
	return domain.SessionDateOf(now.AddDate(0, 0, days))
}
