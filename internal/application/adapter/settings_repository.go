package adapter

import (
	"context"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for the single-row settings tables.
type SettingsRepository interface {
	// FindSalarySettings retrieves the salary settings row, or nil when none exists.
	FindSalarySettings(ctx context.Context) (*entity.SalarySettings, error)

	// CreateSalarySettings inserts the salary settings row.
	CreateSalarySettings(ctx context.Context, settings *entity.SalarySettings) error

	// UpdateSalarySettings updates the salary settings row.
	UpdateSalarySettings(ctx context.Context, settings *entity.SalarySettings) error

	// FindHealthSettings retrieves the health settings row, or nil when none exists.
	FindHealthSettings(ctx context.Context) (*entity.HealthSettings, error)

	// CreateHealthSettings inserts the health settings row.
	CreateHealthSettings(ctx context.Context, settings *entity.HealthSettings) error

	// UpdateHealthSettings updates the health settings row.
	UpdateHealthSettings(ctx context.Context, settings *entity.HealthSettings) error
}
