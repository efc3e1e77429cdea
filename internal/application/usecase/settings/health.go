package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/domain/valueobject"
)

// GetHealthSettingsUseCase returns the health settings row.
type GetHealthSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetHealthSettingsUseCase creates a new GetHealthSettingsUseCase instance.
func NewGetHealthSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetHealthSettingsUseCase {
	return &GetHealthSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute returns the row, or nil when it was never saved.
func (uc *GetHealthSettingsUseCase) Execute(ctx context.Context) (*entity.HealthSettings, error) {
	settings, err := uc.settingsRepo.FindHealthSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get health settings: %w", err)
	}
	return settings, nil
}

// SaveHealthSettingsInput represents the input for saving health settings.
// Every field is optional; an omitted field is stored as null.
type SaveHealthSettingsInput struct {
	Weight       *float64
	Height       *float64
	BirthDate    *time.Time
	TargetWeight *float64
}

// SaveHealthSettingsUseCase upserts the health settings row.
type SaveHealthSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	clock        adapter.Clock
}

// NewSaveHealthSettingsUseCase creates a new SaveHealthSettingsUseCase instance.
func NewSaveHealthSettingsUseCase(settingsRepo adapter.SettingsRepository, clock adapter.Clock) *SaveHealthSettingsUseCase {
	return &SaveHealthSettingsUseCase{
		settingsRepo: settingsRepo,
		clock:        clock,
	}
}

// Execute validates the input and writes the row.
func (uc *SaveHealthSettingsUseCase) Execute(ctx context.Context, input SaveHealthSettingsInput) (*SaveSettingsOutput[entity.HealthSettings], error) {
	for _, metric := range []*float64{input.Weight, input.Height, input.TargetWeight} {
		if metric != nil && *metric <= 0 {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidHealthMetric,
				"weight and height must be greater than zero",
				domainerror.ErrInvalidHealthMetric,
			)
		}
	}

	now := uc.clock.Now().UTC()

	var birthDate *time.Time
	if input.BirthDate != nil {
		date := valueobject.DateKey(*input.BirthDate)
		if !date.Before(valueobject.DateKey(now)) {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidBirthDate,
				"birth date must be in the past",
				domainerror.ErrInvalidBirthDate,
			)
		}
		birthDate = &date
	}

	// Presence check first, then update or insert
	existing, err := uc.settingsRepo.FindHealthSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get health settings: %w", err)
	}

	if existing != nil {
		existing.Weight = input.Weight
		existing.Height = input.Height
		existing.BirthDate = birthDate
		existing.TargetWeight = input.TargetWeight
		existing.UpdatedAt = now
		if err := uc.settingsRepo.UpdateHealthSettings(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update health settings: %w", err)
		}
		return &SaveSettingsOutput[entity.HealthSettings]{Settings: existing}, nil
	}

	settings := &entity.HealthSettings{
		ID:           uuid.New(),
		Weight:       input.Weight,
		Height:       input.Height,
		BirthDate:    birthDate,
		TargetWeight: input.TargetWeight,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.settingsRepo.CreateHealthSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to create health settings: %w", err)
	}

	return &SaveSettingsOutput[entity.HealthSettings]{Settings: settings, Created: true}, nil
}
