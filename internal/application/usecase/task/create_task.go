// Package task contains task-related use cases.
package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

// CreateTaskInput represents the input for task creation.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    *entity.Priority // Optional, defaults to medium
	DueDate     *time.Time
}

// CreateTaskOutput represents the output of task creation.
type CreateTaskOutput struct {
	Task *entity.Task
}

// CreateTaskUseCase handles task creation logic.
type CreateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
func NewCreateTaskUseCase(taskRepo adapter.TaskRepository) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the task creation.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeMissingTaskFields,
			"title is required",
			domainerror.ErrMissingTaskTitle,
		)
	}

	priority, err := resolvePriority(input.Priority)
	if err != nil {
		return nil, err
	}

	task := entity.NewTask(title, input.Description, priority, input.DueDate)

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &CreateTaskOutput{
		Task: task,
	}, nil
}

// resolvePriority applies the medium default and validates the value.
func resolvePriority(p *entity.Priority) (entity.Priority, error) {
	if p == nil || *p == "" {
		return entity.PriorityMedium, nil
	}
	if !p.IsValid() {
		return "", domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskPriority,
			"priority must be 'low', 'medium', or 'high'",
			domainerror.ErrInvalidTaskPriority,
		)
	}
	return *p, nil
}
