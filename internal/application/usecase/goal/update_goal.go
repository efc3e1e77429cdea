// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil fields keep
// their stored value.
type UpdateGoalInput struct {
	GoalID        uuid.UUID
	Title         *string
	Description   *string
	TargetValue   *float64
	CurrentValue  *float64
	Unit          *string
	Deadline      *time.Time
	ClearDeadline bool
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	// Find the existing goal
	goal, err := findGoal(ctx, uc.goalRepo, input.GoalID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalFields,
				"title must not be empty",
				nil,
			)
		}
		goal.Title = title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.TargetValue != nil {
		goal.TargetValue = *input.TargetValue
	}
	if input.CurrentValue != nil {
		goal.CurrentValue = *input.CurrentValue
	}
	if input.Unit != nil && *input.Unit != "" {
		goal.Unit = *input.Unit
	}
	if input.Deadline != nil {
		goal.Deadline = input.Deadline
	} else if input.ClearDeadline {
		goal.Deadline = nil
	}

	if err := validateValues(goal.TargetValue, goal.CurrentValue); err != nil {
		return nil, err
	}

	// Update timestamp
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
