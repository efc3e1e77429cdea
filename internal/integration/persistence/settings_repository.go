package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	"github.com/lifetracker/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// FindSalarySettings retrieves the salary settings row, or nil when none exists.
func (r *settingsRepository) FindSalarySettings(ctx context.Context) (*entity.SalarySettings, error) {
	var settingsModel model.SalarySettingsModel
	result := r.db.WithContext(ctx).Order("created_at ASC").First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// CreateSalarySettings inserts the salary settings row.
func (r *settingsRepository) CreateSalarySettings(ctx context.Context, settings *entity.SalarySettings) error {
	return r.db.WithContext(ctx).Create(model.SalarySettingsFromEntity(settings)).Error
}

// UpdateSalarySettings updates the salary settings row.
func (r *settingsRepository) UpdateSalarySettings(ctx context.Context, settings *entity.SalarySettings) error {
	return r.db.WithContext(ctx).Save(model.SalarySettingsFromEntity(settings)).Error
}

// FindHealthSettings retrieves the health settings row, or nil when none exists.
func (r *settingsRepository) FindHealthSettings(ctx context.Context) (*entity.HealthSettings, error) {
	var settingsModel model.HealthSettingsModel
	result := r.db.WithContext(ctx).Order("created_at ASC").First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// CreateHealthSettings inserts the health settings row.
func (r *settingsRepository) CreateHealthSettings(ctx context.Context, settings *entity.HealthSettings) error {
	return r.db.WithContext(ctx).Create(model.HealthSettingsFromEntity(settings)).Error
}

// UpdateHealthSettings updates the health settings row. Nil metrics are written as null.
func (r *settingsRepository) UpdateHealthSettings(ctx context.Context, settings *entity.HealthSettings) error {
	return r.db.WithContext(ctx).Save(model.HealthSettingsFromEntity(settings)).Error
}
