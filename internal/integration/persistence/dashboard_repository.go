package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lifetracker/backend/internal/application/usecase/dashboard"
	"github.com/lifetracker/backend/internal/domain/entity"
	"github.com/lifetracker/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetCounts returns the headline counters and the expense total since monthStart.
func (r *dashboardRepository) GetCounts(ctx context.Context, monthStart time.Time) (*dashboard.Counts, error) {
	var result struct {
		PendingTasks    int             `gorm:"column:pending_tasks"`
		CompletedTasks  int             `gorm:"column:completed_tasks"`
		Habits          int             `gorm:"column:habits"`
		Goals           int             `gorm:"column:goals"`
		MonthlyExpenses decimal.Decimal `gorm:"column:monthly_expenses"`
		WishlistItems   int             `gorm:"column:wishlist_items"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT
				(SELECT COUNT(*) FROM tasks WHERE status = 'pending') AS pending_tasks,
				(SELECT COUNT(*) FROM tasks WHERE status = 'completed') AS completed_tasks,
				(SELECT COUNT(*) FROM habits) AS habits,
				(SELECT COUNT(*) FROM goals) AS goals,
				(SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE date >= ?) AS monthly_expenses,
				(SELECT COUNT(*) FROM wishlist WHERE purchased = ?) AS wishlist_items
		`, monthStart, false).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard counts: %w", err)
	}

	return &dashboard.Counts{
		PendingTasks:    result.PendingTasks,
		CompletedTasks:  result.CompletedTasks,
		Habits:          result.Habits,
		Goals:           result.Goals,
		MonthlyExpenses: result.MonthlyExpenses,
		WishlistItems:   result.WishlistItems,
	}, nil
}

// GetPendingTasks returns up to limit pending tasks, most urgent first.
func (r *dashboardRepository) GetPendingTasks(ctx context.Context, limit int) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entity.TaskStatusPending)).
		Order(taskOrder).
		Limit(limit).
		Find(&taskModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get pending tasks: %w", err)
	}

	tasks := make([]*entity.Task, len(taskModels))
	for i, tm := range taskModels {
		tasks[i] = tm.ToEntity()
	}
	return tasks, nil
}

// GetUpcomingGoals returns up to limit goals ordered by deadline, undated last.
func (r *dashboardRepository) GetUpcomingGoals(ctx context.Context, limit int) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	err := r.db.WithContext(ctx).
		Order(goalOrder).
		Limit(limit).
		Find(&goalModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming goals: %w", err)
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}
