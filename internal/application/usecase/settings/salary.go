// Package settings contains use cases for the salary and health settings rows.
package settings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

// GetSalarySettingsUseCase returns the salary settings row.
type GetSalarySettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSalarySettingsUseCase creates a new GetSalarySettingsUseCase instance.
func NewGetSalarySettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSalarySettingsUseCase {
	return &GetSalarySettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute returns the row, or nil when it was never saved.
func (uc *GetSalarySettingsUseCase) Execute(ctx context.Context) (*entity.SalarySettings, error) {
	settings, err := uc.settingsRepo.FindSalarySettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary settings: %w", err)
	}
	return settings, nil
}

// SaveSalarySettingsInput represents the input for saving salary settings.
type SaveSalarySettingsInput struct {
	MonthlySalary *decimal.Decimal
	SalaryDate    *int // Optional, defaults to the 25th
}

// SaveSettingsOutput reports the saved row and whether it was inserted.
type SaveSettingsOutput[T any] struct {
	Settings *T
	Created  bool
}

// SaveSalarySettingsUseCase upserts the salary settings row.
type SaveSalarySettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	clock        adapter.Clock
}

// NewSaveSalarySettingsUseCase creates a new SaveSalarySettingsUseCase instance.
func NewSaveSalarySettingsUseCase(settingsRepo adapter.SettingsRepository, clock adapter.Clock) *SaveSalarySettingsUseCase {
	return &SaveSalarySettingsUseCase{
		settingsRepo: settingsRepo,
		clock:        clock,
	}
}

// Execute validates the input and writes the row.
func (uc *SaveSalarySettingsUseCase) Execute(ctx context.Context, input SaveSalarySettingsInput) (*SaveSettingsOutput[entity.SalarySettings], error) {
	if input.MonthlySalary == nil {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeMissingSettingsFields,
			"monthly_salary is required",
			nil,
		)
	}
	if input.MonthlySalary.IsNegative() {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidSalary,
			"monthly salary must not be negative",
			domainerror.ErrInvalidSalary,
		)
	}

	salaryDate := entity.DefaultSalaryDate
	if input.SalaryDate != nil {
		salaryDate = *input.SalaryDate
	}
	if salaryDate < 1 || salaryDate > 31 {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidSalaryDate,
			"salary date must be between 1 and 31",
			domainerror.ErrInvalidSalaryDate,
		)
	}

	existing, err := uc.settingsRepo.FindSalarySettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get salary settings: %w", err)
	}

	now := uc.clock.Now().UTC()

	// Update the single row when it exists
	if existing != nil {
		existing.MonthlySalary = *input.MonthlySalary
		existing.SalaryDate = salaryDate
		existing.UpdatedAt = now
		if err := uc.settingsRepo.UpdateSalarySettings(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update salary settings: %w", err)
		}
		return &SaveSettingsOutput[entity.SalarySettings]{Settings: existing}, nil
	}

	settings := &entity.SalarySettings{
		ID:            uuid.New(),
		MonthlySalary: *input.MonthlySalary,
		SalaryDate:    salaryDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.settingsRepo.CreateSalarySettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to create salary settings: %w", err)
	}

	return &SaveSettingsOutput[entity.SalarySettings]{Settings: settings, Created: true}, nil
}
