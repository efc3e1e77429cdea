package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifetracker/backend/internal/application/usecase/settings"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles salary and health settings endpoints.
type SettingsController struct {
	getSalaryUseCase  *settings.GetSalarySettingsUseCase
	saveSalaryUseCase *settings.SaveSalarySettingsUseCase
	getHealthUseCase  *settings.GetHealthSettingsUseCase
	saveHealthUseCase *settings.SaveHealthSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getSalaryUseCase *settings.GetSalarySettingsUseCase,
	saveSalaryUseCase *settings.SaveSalarySettingsUseCase,
	getHealthUseCase *settings.GetHealthSettingsUseCase,
	saveHealthUseCase *settings.SaveHealthSettingsUseCase,
) *SettingsController {
	return &SettingsController{
		getSalaryUseCase:  getSalaryUseCase,
		saveSalaryUseCase: saveSalaryUseCase,
		getHealthUseCase:  getHealthUseCase,
		saveHealthUseCase: saveHealthUseCase,
	}
}

// GetSalary handles GET /settings requests.
func (c *SettingsController) GetSalary(ctx *gin.Context) {
	salary, err := c.getSalaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SalarySettingsEnvelope{Settings: dto.ToSalarySettingsResponse(salary)})
}

// SaveSalary handles POST /settings requests.
func (c *SettingsController) SaveSalary(ctx *gin.Context) {
	var req dto.SalarySettingsRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingSettingsFields)) {
		return
	}

	output, err := c.saveSalaryUseCase.Execute(ctx.Request.Context(), settings.SaveSalarySettingsInput{
		MonthlySalary: req.MonthlySalary,
		SalaryDate:    req.SalaryDate,
	})
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(savedStatus(output.Created), dto.SalarySettingsEnvelope{Settings: dto.ToSalarySettingsResponse(output.Settings)})
}

// GetHealth handles GET /analytics/health requests.
func (c *SettingsController) GetHealth(ctx *gin.Context) {
	health, err := c.getHealthUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthSettingsEnvelope{Settings: dto.ToHealthSettingsResponse(health)})
}

// SaveHealth handles POST /analytics/health requests.
func (c *SettingsController) SaveHealth(ctx *gin.Context) {
	var req dto.HealthSettingsRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingSettingsFields)) {
		return
	}

	birthDate, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeInvalidBirthDate),
		})
		return
	}

	output, err := c.saveHealthUseCase.Execute(ctx.Request.Context(), settings.SaveHealthSettingsInput{
		Weight:       req.Weight,
		Height:       req.Height,
		BirthDate:    birthDate,
		TargetWeight: req.TargetWeight,
	})
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(savedStatus(output.Created), dto.HealthSettingsEnvelope{Settings: dto.ToHealthSettingsResponse(output.Settings)})
}

func savedStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}

// handleSettingsError handles settings errors and returns appropriate HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		ctx.JSON(c.getStatusCodeForSettingsError(settingsErr.Code), dto.ErrorResponse{
			Error: settingsErr.Message,
			Code:  string(settingsErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForSettingsError maps settings error codes to HTTP status codes.
func (c *SettingsController) getStatusCodeForSettingsError(code domainerror.SettingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidSalary,
		domainerror.ErrCodeInvalidSalaryDate,
		domainerror.ErrCodeMissingSettingsFields,
		domainerror.ErrCodeInvalidHealthMetric,
		domainerror.ErrCodeInvalidBirthDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
