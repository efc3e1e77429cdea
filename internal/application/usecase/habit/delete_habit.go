package habit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/application/adapter"
)

// DeleteHabitInput represents the input for habit deletion.
type DeleteHabitInput struct {
	HabitID uuid.UUID
}

// DeleteHabitUseCase handles habit deletion logic.
type DeleteHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewDeleteHabitUseCase creates a new DeleteHabitUseCase instance.
func NewDeleteHabitUseCase(habitRepo adapter.HabitRepository) *DeleteHabitUseCase {
	return &DeleteHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit deletion. Completions go with the habit.
func (uc *DeleteHabitUseCase) Execute(ctx context.Context, input DeleteHabitInput) error {
	if _, err := uc.habitRepo.FindByID(ctx, input.HabitID); err != nil {
		return notFoundOr(err)
	}

	if err := uc.habitRepo.Delete(ctx, input.HabitID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	return nil
}
