package rollover

import (
	"context"
	"time"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// Scheduler closes the current month for everyone once its last day arrives
type Scheduler struct {
	rollover     usecase.RolloverUseCase
	interval     time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewScheduler creates a scheduler that checks every interval
func NewScheduler(rollover usecase.RolloverUseCase, interval time.Duration, timeProvider coreport.TimeProvider, logger coreport.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{
		rollover:     rollover,
		interval:     interval,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Run checks once immediately and then on every tick until ctx is done
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Rollover scheduler started", map[string]any{
		"interval": s.interval.String(),
	})
	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Rollover scheduler stopped", nil)
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs the rollover when today is the last day of the month
func (s *Scheduler) tick(ctx context.Context) {
	now := s.timeProvider.Now()
	if !entity.IsLastDay(now) {
		return
	}
	if _, err := s.rollover.RunForAll(ctx, entity.MonthOf(now)); err != nil {
		s.logger.Error("Scheduled rollover failed", map[string]any{
			"error": err.Error(),
		})
	}
}
