package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

// UpdateTaskInput represents the input for task update. Every editable
// field is replaced; omitted optional fields fall back to their defaults.
type UpdateTaskInput struct {
	TaskID      uuid.UUID
	Title       string
	Description string
	Status      *entity.TaskStatus // Optional, defaults to pending
	Priority    *entity.Priority   // Optional, defaults to medium
	DueDate     *time.Time
}

// UpdateTaskOutput represents the output of task update.
type UpdateTaskOutput struct {
	Task *entity.Task
}

// UpdateTaskUseCase handles task update logic.
type UpdateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase instance.
func NewUpdateTaskUseCase(taskRepo adapter.TaskRepository) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the task update.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, input UpdateTaskInput) (*UpdateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeMissingTaskFields,
			"title is required",
			domainerror.ErrMissingTaskTitle,
		)
	}

	status := entity.TaskStatusPending
	if input.Status != nil && *input.Status != "" {
		if !input.Status.IsValid() {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeInvalidTaskStatus,
				"status must be 'pending', 'in_progress', or 'completed'",
				domainerror.ErrInvalidTaskStatus,
			)
		}
		status = *input.Status
	}

	priority, err := resolvePriority(input.Priority)
	if err != nil {
		return nil, err
	}

	// Find the existing task
	task, err := uc.taskRepo.FindByID(ctx, input.TaskID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTaskNotFound) {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeTaskNotFound,
				"task not found",
				domainerror.ErrTaskNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.Title = title
	task.Description = input.Description
	task.Status = status
	task.Priority = priority
	task.DueDate = input.DueDate
	task.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &UpdateTaskOutput{
		Task: task,
	}, nil
}
