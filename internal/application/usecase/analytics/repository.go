// Package analytics contains the life score use cases.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// AnalyticsRepository defines the aggregate reads the life score is built from.
// Each method issues a single query and never writes.
type AnalyticsRepository interface {
	// SumInvestmentValue returns SUM(value_thb) over investments.
	SumInvestmentValue(ctx context.Context) (decimal.Decimal, error)

	// SumRemainingDebt returns SUM(remaining_amount) over debts.
	SumRemainingDebt(ctx context.Context) (decimal.Decimal, error)

	// SumExpensesBetween returns SUM(amount) over expenses dated in [from, to).
	SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// GetMonthlySalary returns the configured salary, or zero when unset.
	GetMonthlySalary(ctx context.Context) (decimal.Decimal, error)

	// GetHealthSettings returns the health settings row, or nil when unset.
	GetHealthSettings(ctx context.Context) (*entity.HealthSettings, error)

	// CountTasks returns the number of tasks.
	CountTasks(ctx context.Context) (int, error)

	// CountCompletedTasks returns the number of completed tasks.
	CountCompletedTasks(ctx context.Context) (int, error)

	// CountHabits returns the number of habits.
	CountHabits(ctx context.Context) (int, error)

	// AverageGoalProgress returns the mean goal progress percentage, 0 without goals.
	AverageGoalProgress(ctx context.Context) (float64, error)
}
