package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/application/adapter"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

// DeleteTaskInput represents the input for task deletion.
type DeleteTaskInput struct {
	TaskID uuid.UUID
}

// DeleteTaskUseCase handles task deletion logic.
type DeleteTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase instance.
func NewDeleteTaskUseCase(taskRepo adapter.TaskRepository) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the task deletion.
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, input DeleteTaskInput) error {
	// Find the existing task
	if _, err := uc.taskRepo.FindByID(ctx, input.TaskID); err != nil {
		if errors.Is(err, domainerror.ErrTaskNotFound) {
			return domainerror.NewTaskError(
				domainerror.ErrCodeTaskNotFound,
				"task not found",
				domainerror.ErrTaskNotFound,
			)
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := uc.taskRepo.Delete(ctx, input.TaskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
