package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lifetracker/backend/internal/application/usecase/analytics"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/persistence/model"
)

// pqUndefinedTable is the SQLSTATE postgres reports for a missing relation.
const pqUndefinedTable = "42P01"

// analyticsRepository implements the analytics.AnalyticsRepository interface.
// Every method is a single read-only aggregate.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) analytics.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// SumInvestmentValue returns SUM(value_thb) over investments.
func (r *analyticsRepository) SumInvestmentValue(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, "investments", "SELECT COALESCE(SUM(value_thb), 0) AS total FROM investments")
}

// SumRemainingDebt returns SUM(remaining_amount) over debts.
func (r *analyticsRepository) SumRemainingDebt(ctx context.Context) (decimal.Decimal, error) {
	return r.sum(ctx, "debts", "SELECT COALESCE(SUM(remaining_amount), 0) AS total FROM debts")
}

// SumExpensesBetween returns SUM(amount) over expenses dated in [from, to).
func (r *analyticsRepository) SumExpensesBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.sum(ctx, "expenses",
		"SELECT COALESCE(SUM(amount), 0) AS total FROM expenses WHERE date >= ? AND date < ?", from, to)
}

// GetMonthlySalary returns the configured salary, or zero when unset.
func (r *analyticsRepository) GetMonthlySalary(ctx context.Context) (decimal.Decimal, error) {
	var settingsModel model.SalarySettingsModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Limit(1).Find(&settingsModel)
	if result.Error != nil {
		return decimal.Zero, classify("salary_settings", result.Error)
	}
	if result.RowsAffected == 0 {
		return decimal.Zero, nil
	}
	return settingsModel.MonthlySalary, nil
}

// GetHealthSettings returns the health settings row, or nil when unset.
func (r *analyticsRepository) GetHealthSettings(ctx context.Context) (*entity.HealthSettings, error) {
	var settingsModel model.HealthSettingsModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Limit(1).Find(&settingsModel)
	if result.Error != nil {
		return nil, classify("health_settings", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return settingsModel.ToEntity(), nil
}

// CountTasks returns the number of tasks.
func (r *analyticsRepository) CountTasks(ctx context.Context) (int, error) {
	return r.count(ctx, "tasks", "SELECT COUNT(*) FROM tasks")
}

// CountCompletedTasks returns the number of completed tasks.
func (r *analyticsRepository) CountCompletedTasks(ctx context.Context) (int, error) {
	return r.count(ctx, "tasks", "SELECT COUNT(*) FROM tasks WHERE status = ?", string(entity.TaskStatusCompleted))
}

// CountHabits returns the number of habits.
func (r *analyticsRepository) CountHabits(ctx context.Context) (int, error) {
	return r.count(ctx, "habits", "SELECT COUNT(*) FROM habits")
}

// AverageGoalProgress returns the mean goal progress percentage, 0 without goals.
// Goals with a non-positive target count as 0%.
func (r *analyticsRepository) AverageGoalProgress(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(AVG(CASE WHEN target_value > 0 THEN current_value * 100.0 / target_value ELSE 0 END), 0) FROM goals`).
		Scan(&avg).Error
	if err != nil {
		return 0, classify("goals", err)
	}
	return avg, nil
}

func (r *analyticsRepository) sum(ctx context.Context, table, query string, args ...interface{}) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&row).Error; err != nil {
		return decimal.Zero, classify(table, err)
	}
	return row.Total, nil
}

func (r *analyticsRepository) count(ctx context.Context, table, query string, args ...interface{}) (int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&total).Error; err != nil {
		return 0, classify(table, err)
	}
	return int(total), nil
}

// classify tags a failed aggregate as a missing table or a generic failure.
func classify(table string, err error) error {
	if isUndefinedTable(err) {
		return domainerror.NewAnalyticsError(
			domainerror.ErrCodeSchemaMissing,
			fmt.Sprintf("table %s does not exist", table),
			fmt.Errorf("%w: %w", domainerror.ErrSchemaMissing, err),
		)
	}
	return domainerror.NewAnalyticsError(
		domainerror.ErrCodeAggregateFailed,
		fmt.Sprintf("aggregate over %s failed", table),
		fmt.Errorf("%w: %w", domainerror.ErrAggregateFailed, err),
	)
}

// isUndefinedTable recognises a missing relation from postgres (lib/pq or
// pgx) and from sqlite.
func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUndefinedTable
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE "+pqUndefinedTable) || strings.Contains(msg, "no such table")
}
