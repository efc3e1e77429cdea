package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lifetracker/backend/internal/application/usecase/goal"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	getUseCase    *goal.GetGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GoalListResponse{Goals: dto.ToGoalResponses(output.Goals)})
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingGoalFields)) {
		return
	}

	deadline, err := dto.ParseDate(req.Deadline)
	if err != nil {
		c.invalidDeadline(ctx)
		return
	}

	input := goal.CreateGoalInput{
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
		Deadline:     deadline,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.GoalEnvelope{Goal: dto.ToGoalResponse(output.Goal)})
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	goalID, ok := parseID(ctx, "goal")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: goalID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GoalEnvelope{Goal: dto.ToGoalResponse(output.Goal)})
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	goalID, ok := parseID(ctx, "goal")
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingGoalFields)) {
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:       goalID,
		Title:        req.Title,
		Description:  req.Description,
		TargetValue:  req.TargetValue,
		CurrentValue: req.CurrentValue,
		Unit:         req.Unit,
	}

	// An explicit empty deadline removes it
	if req.Deadline != nil {
		if strings.TrimSpace(*req.Deadline) == "" {
			input.ClearDeadline = true
		} else {
			deadline, err := dto.ParseDate(req.Deadline)
			if err != nil {
				c.invalidDeadline(ctx)
				return
			}
			input.Deadline = deadline
		}
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GoalEnvelope{Goal: dto.ToGoalResponse(output.Goal)})
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	goalID, ok := parseID(ctx, "goal")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{GoalID: goalID}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *GoalController) invalidDeadline(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: domainerror.ErrInvalidDateFormat.Error(),
		Code:  string(domainerror.ErrCodeInvalidGoalDeadline),
	})
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTargetValue,
		domainerror.ErrCodeInvalidCurrentValue,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeInvalidGoalDeadline:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
