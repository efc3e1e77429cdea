package habit

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	Name        string
	Frequency   *entity.HabitFrequency // Optional, defaults to daily
	TargetCount *int                   // Optional, defaults to 1
	Color       string
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit *entity.Habit
}

// CreateHabitUseCase handles habit creation logic.
type CreateHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(habitRepo adapter.HabitRepository) *CreateHabitUseCase {
	return &CreateHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit creation.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeMissingHabitFields,
			"name is required",
			nil,
		)
	}

	frequency := entity.HabitFrequencyDaily
	if input.Frequency != nil && *input.Frequency != "" {
		if *input.Frequency != entity.HabitFrequencyDaily && *input.Frequency != entity.HabitFrequencyWeekly {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidHabitFrequency,
				"frequency must be 'daily' or 'weekly'",
				domainerror.ErrInvalidHabitFrequency,
			)
		}
		frequency = *input.Frequency
	}

	targetCount := 1
	if input.TargetCount != nil {
		if *input.TargetCount < 1 {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeInvalidTargetCount,
				"target count must be at least 1",
				domainerror.ErrInvalidTargetCount,
			)
		}
		targetCount = *input.TargetCount
	}

	color := input.Color
	if color == "" {
		color = entity.DefaultHabitColor
	}

	habit := entity.NewHabit(name, frequency, targetCount, color)

	if err := uc.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &CreateHabitOutput{
		Habit: habit,
	}, nil
}
