package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifetracker/backend/internal/application/usecase/habit"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/entrypoint/dto"
)

// HabitController handles habit endpoints.
type HabitController struct {
	listUseCase    *habit.ListHabitsUseCase
	createUseCase  *habit.CreateHabitUseCase
	checkinUseCase *habit.CheckinHabitUseCase
	deleteUseCase  *habit.DeleteHabitUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	listUseCase *habit.ListHabitsUseCase,
	createUseCase *habit.CreateHabitUseCase,
	checkinUseCase *habit.CheckinHabitUseCase,
	deleteUseCase *habit.DeleteHabitUseCase,
) *HabitController {
	return &HabitController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		checkinUseCase: checkinUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// List handles GET /habits requests.
func (c *HabitController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitListResponse(output.Habits))
}

// Create handles POST /habits requests.
func (c *HabitController) Create(ctx *gin.Context) {
	var req dto.CreateHabitRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingHabitFields)) {
		return
	}

	input := habit.CreateHabitInput{
		Name:        req.Name,
		TargetCount: req.TargetCount,
		Color:       req.Color,
	}
	if req.Frequency != nil {
		frequency := entity.HabitFrequency(*req.Frequency)
		input.Frequency = &frequency
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.HabitEnvelope{Habit: dto.ToHabitResponse(output.Habit)})
}

// Checkin handles POST /habits/:id/checkin requests.
func (c *HabitController) Checkin(ctx *gin.Context) {
	habitID, ok := parseID(ctx, "habit")
	if !ok {
		return
	}

	output, err := c.checkinUseCase.Execute(ctx.Request.Context(), habit.CheckinHabitInput{HabitID: habitID})
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CompletionEnvelope{Completion: dto.ToCompletionResponse(output.Completion)})
}

// Delete handles DELETE /habits/:id requests.
func (c *HabitController) Delete(ctx *gin.Context) {
	habitID, ok := parseID(ctx, "habit")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), habit.DeleteHabitInput{HabitID: habitID}); err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleHabitError handles habit errors and returns appropriate HTTP responses.
func (c *HabitController) handleHabitError(ctx *gin.Context, err error) {
	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		ctx.JSON(c.getStatusCodeForHabitError(habitErr.Code), dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForHabitError maps habit error codes to HTTP status codes.
func (c *HabitController) getStatusCodeForHabitError(code domainerror.HabitErrorCode) int {
	switch code {
	case domainerror.ErrCodeHabitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidHabitFrequency,
		domainerror.ErrCodeInvalidTargetCount,
		domainerror.ErrCodeMissingHabitFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
