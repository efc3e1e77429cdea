// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// DashboardRepository defines the interface for dashboard data operations.
type DashboardRepository interface {
	// GetCounts returns the headline counters and the expense total since monthStart.
	GetCounts(ctx context.Context, monthStart time.Time) (*Counts, error)

	// GetPendingTasks returns up to limit pending tasks, most urgent first.
	GetPendingTasks(ctx context.Context, limit int) ([]*entity.Task, error)

	// GetUpcomingGoals returns up to limit goals ordered by deadline, undated last.
	GetUpcomingGoals(ctx context.Context, limit int) ([]*entity.Goal, error)
}

// Counts holds the dashboard headline figures.
type Counts struct {
	PendingTasks    int
	CompletedTasks  int
	Habits          int
	Goals           int
	MonthlyExpenses decimal.Decimal
	WishlistItems   int // not yet purchased
}
