// Package scheduler runs the periodic background jobs of the service.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/lifetracker/backend/internal/application/adapter"
)

const jobTimeout = 30 * time.Second

// Scheduler manages the cron jobs.
type Scheduler struct {
	cron     *cron.Cron
	rates    adapter.ExchangeRateProvider
	attempts adapter.AttemptStore
}

// NewScheduler creates a new Scheduler. Specs use the six-field format with seconds.
func NewScheduler(rates adapter.ExchangeRateProvider, attempts adapter.AttemptStore) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		rates:    rates,
		attempts: attempts,
	}
}

// RegisterAll registers the rate refresh and the login attempt cleanup.
// An empty expression disables the job.
func (s *Scheduler) RegisterAll(rateRefreshCron, attemptCleanupCron string) error {
	if rateRefreshCron != "" {
		if _, err := s.cron.AddFunc(rateRefreshCron, s.refreshRates); err != nil {
			return fmt.Errorf("register rate refresh: %w", err)
		}
	}
	if attemptCleanupCron != "" {
		if _, err := s.cron.AddFunc(attemptCleanupCron, s.cleanupAttempts); err != nil {
			return fmt.Errorf("register attempt cleanup: %w", err)
		}
	}
	return nil
}

// Len returns the number of registered jobs.
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("Scheduler started", "jobs", s.Len())
}

// Stop stops the scheduler and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info("Scheduler stopped")
	case <-ctx.Done():
		slog.Warn("Scheduler stop timed out")
	}
}

func (s *Scheduler) refreshRates() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.rates.Refresh(ctx); err != nil {
		slog.Error("Scheduled rate refresh failed", "error", err)
	}
}

func (s *Scheduler) cleanupAttempts() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.attempts.Cleanup(ctx); err != nil {
		slog.Error("Login attempt cleanup failed", "error", err)
	}
}
