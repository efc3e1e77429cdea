package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lifetracker/backend/internal/domain/valueobject"
)

type countingRates struct {
	calls int
	err   error
}

func (r *countingRates) Current() valueobject.RateTable { return valueobject.RateTable{} }

func (r *countingRates) Refresh(_ context.Context) (valueobject.RateTable, error) {
	r.calls++
	return valueobject.RateTable{}, r.err
}

type countingAttempts struct {
	cleanups int
}

func (a *countingAttempts) Increment(_ context.Context, _ string, _ time.Duration) (int, time.Time, error) {
	return 0, time.Time{}, nil
}

func (a *countingAttempts) Get(_ context.Context, _ string) (int, time.Time, error) {
	return 0, time.Time{}, nil
}

func (a *countingAttempts) Reset(_ context.Context, _ string) error { return nil }

func (a *countingAttempts) Cleanup(_ context.Context) error {
	a.cleanups++
	return nil
}

func TestScheduler_RegisterAll(t *testing.T) {
	tests := []struct {
		name        string
		rateSpec    string
		cleanupSpec string
		wantJobs    int
		wantErr     bool
	}{
		{name: "both jobs", rateSpec: "0 0 */6 * * *", cleanupSpec: "0 */5 * * * *", wantJobs: 2},
		{name: "refresh disabled", rateSpec: "", cleanupSpec: "0 */5 * * * *", wantJobs: 1},
		{name: "invalid cron expression", rateSpec: "every day", cleanupSpec: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler(&countingRates{}, &countingAttempts{})
			err := s.RegisterAll(tt.rateSpec, tt.cleanupSpec)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Len() != tt.wantJobs {
				t.Errorf("expected %d jobs, got %d", tt.wantJobs, s.Len())
			}
		})
	}
}

func TestScheduler_Jobs(t *testing.T) {
	rates := &countingRates{err: errors.New("feed down")}
	attempts := &countingAttempts{}
	s := NewScheduler(rates, attempts)

	s.refreshRates()
	s.cleanupAttempts()

	if rates.calls != 1 {
		t.Errorf("expected one refresh, got %d", rates.calls)
	}
	if attempts.cleanups != 1 {
		t.Errorf("expected one cleanup, got %d", attempts.cleanups)
	}
}

func TestScheduler_StartStop(t *testing.T) {
	s := NewScheduler(&countingRates{}, &countingAttempts{})
	if err := s.RegisterAll("0 0 0 1 1 *", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
