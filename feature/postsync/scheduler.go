package postsync

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Scheduler fires scheduled sync runs on a configurable cadence. The cadence
// can be changed at runtime through Reset, which is how a saved attribute
// map takes effect without a restart.
type Scheduler struct {
	engine *Engine
	logger *zap.Logger
	reset  chan time.Duration
}

// NewScheduler creates a scheduler for the engine. Run must be called on its
// own goroutine before the scheduler does anything.
func NewScheduler(engine *Engine, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		engine: engine,
		logger: logger,
		reset:  make(chan time.Duration, 1),
	}
}

// Reset changes the run cadence. Zero or negative disables scheduled runs.
// Only the most recent pending reset is kept.
func (s *Scheduler) Reset(interval time.Duration) {
	for {
		select {
		case s.reset <- interval:
			return
		case <-s.reset:
		}
	}
}

// Run loops until the context is canceled. A tick that lands while another
// sync is in flight is skipped, not queued.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	var ticker *time.Ticker
	var tick <-chan time.Time

	arm := func(d time.Duration) {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tick = nil
		}
		if d > 0 {
			ticker = time.NewTicker(d)
			tick = ticker.C
		}
	}
	arm(interval)
	defer arm(0)

	for {
		select {
		case <-ctx.Done():
			return
		case d := <-s.reset:
			s.logger.Info("Sync schedule updated", zap.Duration("interval", d))
			arm(d)
		case <-tick:
			ran, err := s.engine.RunScheduledIfIdle(ctx)
			if !ran {
				s.logger.Info("Skipping scheduled sync, another run is in flight")
				continue
			}
			if err != nil {
				s.logger.Error("Scheduled sync failed", zap.Error(err))
			}
		}
	}
}
