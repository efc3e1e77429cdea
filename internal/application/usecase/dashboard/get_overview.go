package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
)

const (
	pendingTaskLimit  = 5
	upcomingGoalLimit = 3
)

// GetOverviewOutput represents the dashboard overview.
type GetOverviewOutput struct {
	Counts        Counts
	PendingTasks  []*entity.Task
	UpcomingGoals []*entity.Goal
}

// GetOverviewUseCase builds the dashboard overview.
type GetOverviewUseCase struct {
	dashboardRepo DashboardRepository
	clock         adapter.Clock
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(dashboardRepo DashboardRepository, clock adapter.Clock) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		dashboardRepo: dashboardRepo,
		clock:         clock,
	}
}

// Execute retrieves the overview.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*GetOverviewOutput, error) {
	now := uc.clock.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	counts, err := uc.dashboardRepo.GetCounts(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard counts: %w", err)
	}

	tasks, err := uc.dashboardRepo.GetPendingTasks(ctx, pendingTaskLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending tasks: %w", err)
	}

	goals, err := uc.dashboardRepo.GetUpcomingGoals(ctx, upcomingGoalLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming goals: %w", err)
	}

	return &GetOverviewOutput{
		Counts:        *counts,
		PendingTasks:  tasks,
		UpcomingGoals: goals,
	}, nil
}
