package task

import (
	"context"
	"fmt"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
)

// ListTasksOutput represents the output of listing tasks.
type ListTasksOutput struct {
	Tasks []*entity.Task
}

// ListTasksUseCase handles listing tasks logic.
type ListTasksUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewListTasksUseCase creates a new ListTasksUseCase instance.
func NewListTasksUseCase(taskRepo adapter.TaskRepository) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the task listing.
func (uc *ListTasksUseCase) Execute(ctx context.Context) (*ListTasksOutput, error) {
	tasks, err := uc.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &ListTasksOutput{
		Tasks: tasks,
	}, nil
}
