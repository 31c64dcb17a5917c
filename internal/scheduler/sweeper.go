package scheduler

import (
	"context"
	"time"

	"gymadmin/internal/logger"
	"gymadmin/internal/metrics"
)

// MemberSweeper is the slice of the member service the scheduler needs.
type MemberSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// Sweeper runs the expiry sweep on a fixed interval (daily in production).
// It runs once at startup so a restart never skips a day.
type Sweeper struct {
	members  MemberSweeper
	interval time.Duration
}

func NewSweeper(members MemberSweeper, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Sweeper{
		members:  members,
		interval: interval,
	}
}

// Start blocks until the context is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	logger.Infof("Expiry sweeper started, interval %s", s.interval)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Expiry sweeper stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single sweep pass. Safe to call concurrently with
// ordinary edits; conflicting writes are last-write-wins.
func (s *Sweeper) RunOnce(ctx context.Context) {
	deactivated, err := s.members.SweepExpired(ctx)
	if err != nil {
		logger.Errorf("Expiry sweep failed: %v", err)
		return
	}

	metrics.RecordSweep(deactivated)
	if deactivated > 0 {
		logger.Infof("Expiry sweep deactivated %d member(s)", deactivated)
	}
}
