// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Title        string
	Description  string
	TargetValue  *float64 // Optional, defaults to 100
	CurrentValue *float64 // Optional, defaults to 0
	Unit         string   // Optional, defaults to %
	Deadline     *time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"title is required",
			nil,
		)
	}

	// Apply defaults
	target := float64(entity.DefaultGoalTarget)
	if input.TargetValue != nil {
		target = *input.TargetValue
	}
	current := 0.0
	if input.CurrentValue != nil {
		current = *input.CurrentValue
	}
	unit := input.Unit
	if unit == "" {
		unit = entity.DefaultGoalUnit
	}

	if err := validateValues(target, current); err != nil {
		return nil, err
	}

	goal := entity.NewGoal(title, input.Description, target, current, unit, input.Deadline)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

// validateValues checks the target is positive and the current value is not negative.
func validateValues(target, current float64) error {
	if target <= 0 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetValue,
			"target value must be greater than zero",
			domainerror.ErrInvalidTargetValue,
		)
	}
	if current < 0 {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCurrentValue,
			"current value must not be negative",
			domainerror.ErrInvalidCurrentValue,
		)
	}
	return nil
}
