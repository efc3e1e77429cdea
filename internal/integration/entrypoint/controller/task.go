package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifetracker/backend/internal/application/usecase/task"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/entrypoint/dto"
)

// TaskController handles task endpoints.
type TaskController struct {
	listUseCase   *task.ListTasksUseCase
	createUseCase *task.CreateTaskUseCase
	updateUseCase *task.UpdateTaskUseCase
	deleteUseCase *task.DeleteTaskUseCase
}

// NewTaskController creates a new task controller instance.
func NewTaskController(
	listUseCase *task.ListTasksUseCase,
	createUseCase *task.CreateTaskUseCase,
	updateUseCase *task.UpdateTaskUseCase,
	deleteUseCase *task.DeleteTaskUseCase,
) *TaskController {
	return &TaskController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /tasks requests.
func (c *TaskController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TaskListResponse{Tasks: dto.ToTaskResponses(output.Tasks)})
}

// Create handles POST /tasks requests.
func (c *TaskController) Create(ctx *gin.Context) {
	var req dto.TaskRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingTaskFields)) {
		return
	}

	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		c.invalidDueDate(ctx)
		return
	}

	input := task.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	}
	if req.Priority != nil {
		priority := entity.Priority(*req.Priority)
		input.Priority = &priority
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.TaskEnvelope{Task: dto.ToTaskResponse(output.Task)})
}

// Update handles PUT /tasks/:id requests.
func (c *TaskController) Update(ctx *gin.Context) {
	taskID, ok := parseID(ctx, "task")
	if !ok {
		return
	}

	var req dto.TaskRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingTaskFields)) {
		return
	}

	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		c.invalidDueDate(ctx)
		return
	}

	input := task.UpdateTaskInput{
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
	}
	if req.Status != nil {
		status := entity.TaskStatus(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := entity.Priority(*req.Priority)
		input.Priority = &priority
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TaskEnvelope{Task: dto.ToTaskResponse(output.Task)})
}

// Delete handles DELETE /tasks/:id requests.
func (c *TaskController) Delete(ctx *gin.Context) {
	taskID, ok := parseID(ctx, "task")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), task.DeleteTaskInput{TaskID: taskID}); err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *TaskController) invalidDueDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: domainerror.ErrInvalidDateFormat.Error(),
		Code:  string(domainerror.ErrCodeInvalidTaskDueDate),
	})
}

// handleTaskError handles task errors and returns appropriate HTTP responses.
func (c *TaskController) handleTaskError(ctx *gin.Context, err error) {
	var taskErr *domainerror.TaskError
	if errors.As(err, &taskErr) {
		ctx.JSON(c.getStatusCodeForTaskError(taskErr.Code), dto.ErrorResponse{
			Error: taskErr.Message,
			Code:  string(taskErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForTaskError maps task error codes to HTTP status codes.
func (c *TaskController) getStatusCodeForTaskError(code domainerror.TaskErrorCode) int {
	switch code {
	case domainerror.ErrCodeTaskNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTaskStatus,
		domainerror.ErrCodeInvalidTaskPriority,
		domainerror.ErrCodeMissingTaskFields,
		domainerror.ErrCodeInvalidTaskDueDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
