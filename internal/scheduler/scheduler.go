package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"stufflending/internal/clock"
	"stufflending/internal/config"
	"stufflending/internal/logger"
)

// Scheduler optionally advances the simulated clock on a cron schedule. It
// goes through the same AdvanceDays path as interactive input, so settlement
// still happens synchronously with each advance.
type Scheduler struct {
	cron        *cron.Cron
	clock       *clock.Clock
	daysPerTick int
}

// NewScheduler creates a scheduler that advances clk by cfg.DaysPerTick on
// every tick of cfg.AutoAdvance.
func NewScheduler(clk *clock.Clock, cfg config.SchedulerConfig) (*Scheduler, error) {
	// Cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:        c,
		clock:       clk,
		daysPerTick: cfg.DaysPerTick,
	}

	if _, err := c.AddFunc(cfg.AutoAdvance, s.advance); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) advance() {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Auto-advance panicked", "panic", r)
		}
	}()

	day, err := s.clock.AdvanceDays(context.Background(), s.daysPerTick)
	if err != nil {
		logger.Error("Auto-advance settlement reported failures", "current_day", day, "error", err)
		return
	}
	logger.Info("Auto-advanced clock", "current_day", day, "days", s.daysPerTick)
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting auto-advance scheduler...", "days_per_tick", s.daysPerTick)
	s.cron.Start()
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Auto-advance scheduler stopped")
}
