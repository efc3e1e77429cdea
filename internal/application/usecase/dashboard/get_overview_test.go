package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeDashboardRepository struct {
	counts     *Counts
	countsErr  error
	monthStart time.Time
	taskLimit  int
	goalLimit  int
}

func (r *fakeDashboardRepository) GetCounts(_ context.Context, monthStart time.Time) (*Counts, error) {
	r.monthStart = monthStart
	return r.counts, r.countsErr
}

func (r *fakeDashboardRepository) GetPendingTasks(_ context.Context, limit int) ([]*entity.Task, error) {
	r.taskLimit = limit
	return []*entity.Task{entity.NewTask("Write report", "", entity.PriorityHigh, nil)}, nil
}

func (r *fakeDashboardRepository) GetUpcomingGoals(_ context.Context, limit int) ([]*entity.Goal, error) {
	r.goalLimit = limit
	return nil, nil
}

func TestGetOverviewUseCase(t *testing.T) {
	repo := &fakeDashboardRepository{
		counts: &Counts{PendingTasks: 3, CompletedTasks: 2, Habits: 4, Goals: 1, MonthlyExpenses: decimal.NewFromInt(1250), WishlistItems: 2},
	}
	now := time.Date(2026, 7, 19, 23, 0, 0, 0, time.UTC)

	output, err := NewGetOverviewUseCase(repo, fixedClock{now}).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !repo.monthStart.Equal(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected month start %s", repo.monthStart)
	}
	if repo.taskLimit != 5 || repo.goalLimit != 3 {
		t.Errorf("expected limits 5 and 3, got %d and %d", repo.taskLimit, repo.goalLimit)
	}
	if output.Counts.PendingTasks != 3 || !output.Counts.MonthlyExpenses.Equal(decimal.NewFromInt(1250)) {
		t.Errorf("unexpected counts %+v", output.Counts)
	}
	if len(output.PendingTasks) != 1 {
		t.Errorf("expected 1 pending task, got %d", len(output.PendingTasks))
	}
}

func TestGetOverviewUseCase_PropagatesErrors(t *testing.T) {
	repo := &fakeDashboardRepository{countsErr: errors.New("db down")}

	_, err := NewGetOverviewUseCase(repo, fixedClock{time.Now()}).Execute(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
}
