package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifetracker/backend/internal/application/usecase/timeentry"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/entrypoint/dto"
)

// TimeEntryController handles time tracker endpoints.
type TimeEntryController struct {
	listUseCase   *timeentry.ListTimeEntriesUseCase
	startUseCase  *timeentry.StartTimeEntryUseCase
	updateUseCase *timeentry.UpdateTimeEntryUseCase
	deleteUseCase *timeentry.DeleteTimeEntryUseCase
}

// NewTimeEntryController creates a new time entry controller instance.
func NewTimeEntryController(
	listUseCase *timeentry.ListTimeEntriesUseCase,
	startUseCase *timeentry.StartTimeEntryUseCase,
	updateUseCase *timeentry.UpdateTimeEntryUseCase,
	deleteUseCase *timeentry.DeleteTimeEntryUseCase,
) *TimeEntryController {
	return &TimeEntryController{
		listUseCase:   listUseCase,
		startUseCase:  startUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /timetracker requests.
func (c *TimeEntryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimeEntryListResponse(output.Entries))
}

// Start handles POST /timetracker requests.
func (c *TimeEntryController) Start(ctx *gin.Context) {
	var req dto.StartTimeEntryRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingTimeEntryFields)) {
		return
	}

	output, err := c.startUseCase.Execute(ctx.Request.Context(), timeentry.StartTimeEntryInput{
		Project:     req.Project,
		Description: req.Description,
	})
	if err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.TimeEntryEnvelope{Entry: dto.ToTimeEntryResponse(output.Entry)})
}

// Update handles PUT /timetracker/:id requests.
func (c *TimeEntryController) Update(ctx *gin.Context) {
	entryID, ok := parseID(ctx, "time entry")
	if !ok {
		return
	}

	var req dto.UpdateTimeEntryRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeInvalidTimeEntryAction)) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), timeentry.UpdateTimeEntryInput{
		EntryID: entryID,
		Action:  req.Action,
	})
	if err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TimeEntryEnvelope{Entry: dto.ToTimeEntryResponse(output.Entry)})
}

// Delete handles DELETE /timetracker/:id requests.
func (c *TimeEntryController) Delete(ctx *gin.Context) {
	entryID, ok := parseID(ctx, "time entry")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), timeentry.DeleteTimeEntryInput{EntryID: entryID}); err != nil {
		c.handleTimeEntryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleTimeEntryError handles time entry errors and returns appropriate HTTP responses.
func (c *TimeEntryController) handleTimeEntryError(ctx *gin.Context, err error) {
	var entryErr *domainerror.TimeEntryError
	if errors.As(err, &entryErr) {
		ctx.JSON(c.getStatusCodeForTimeEntryError(entryErr.Code), dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForTimeEntryError maps time entry error codes to HTTP status codes.
func (c *TimeEntryController) getStatusCodeForTimeEntryError(code domainerror.TimeEntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeTimeEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTimeEntryAlreadyStopped:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTimeEntryAction,
		domainerror.ErrCodeMissingTimeEntryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
