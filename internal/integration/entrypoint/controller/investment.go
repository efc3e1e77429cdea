package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifetracker/backend/internal/application/usecase/investment"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/entrypoint/dto"
)

// InvestmentController handles investment and exchange rate endpoints.
type InvestmentController struct {
	listUseCase         *investment.ListInvestmentsUseCase
	createUseCase       *investment.CreateInvestmentUseCase
	updateUseCase       *investment.UpdateInvestmentUseCase
	deleteUseCase       *investment.DeleteInvestmentUseCase
	getRatesUseCase     *investment.GetRatesUseCase
	refreshRatesUseCase *investment.RefreshRatesUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	listUseCase *investment.ListInvestmentsUseCase,
	createUseCase *investment.CreateInvestmentUseCase,
	updateUseCase *investment.UpdateInvestmentUseCase,
	deleteUseCase *investment.DeleteInvestmentUseCase,
	getRatesUseCase *investment.GetRatesUseCase,
	refreshRatesUseCase *investment.RefreshRatesUseCase,
) *InvestmentController {
	return &InvestmentController{
		listUseCase:         listUseCase,
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		getRatesUseCase:     getRatesUseCase,
		refreshRatesUseCase: refreshRatesUseCase,
	}
}

// List handles GET /investments requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentListResponse(output.Investments, output.Summary))
}

// Create handles POST /investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	var req dto.InvestmentRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingInvestmentFields)) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), toInvestmentInput(req))
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.InvestmentEnvelope{Investment: dto.ToInvestmentResponse(output.Investment)})
}

// Update handles PUT /investments/:id requests.
func (c *InvestmentController) Update(ctx *gin.Context) {
	investmentID, ok := parseID(ctx, "investment")
	if !ok {
		return
	}

	var req dto.InvestmentRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingInvestmentFields)) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), investment.UpdateInvestmentInput{
		InvestmentID:    investmentID,
		InvestmentInput: toInvestmentInput(req),
	})
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InvestmentEnvelope{Investment: dto.ToInvestmentResponse(output.Investment)})
}

// Delete handles DELETE /investments/:id requests.
func (c *InvestmentController) Delete(ctx *gin.Context) {
	investmentID, ok := parseID(ctx, "investment")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), investment.DeleteInvestmentInput{InvestmentID: investmentID}); err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Rates handles GET /investments/rates requests.
func (c *InvestmentController) Rates(ctx *gin.Context) {
	output := c.getRatesUseCase.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToRatesResponse(output.Table))
}

// RefreshRates handles POST /investments/rates/refresh requests.
func (c *InvestmentController) RefreshRates(ctx *gin.Context) {
	output, err := c.refreshRatesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRatesResponse(output.Table))
}

func toInvestmentInput(req dto.InvestmentRequest) investment.InvestmentInput {
	input := investment.InvestmentInput{
		Name:          req.Name,
		Amount:        dto.DecimalOrZero(req.Amount),
		Currency:      req.Currency,
		ValueTHB:      req.ValueTHB,
		PurchasePrice: dto.DecimalOrZero(req.PurchasePrice),
		CurrentPrice:  dto.DecimalOrZero(req.CurrentPrice),
		Notes:         req.Notes,
	}
	if req.Type != nil {
		investmentType := entity.InvestmentType(*req.Type)
		input.Type = &investmentType
	}
	return input
}

// handleInvestmentError handles investment errors and returns appropriate HTTP responses.
func (c *InvestmentController) handleInvestmentError(ctx *gin.Context, err error) {
	var investmentErr *domainerror.InvestmentError
	if errors.As(err, &investmentErr) {
		ctx.JSON(c.getStatusCodeForInvestmentError(investmentErr.Code), dto.ErrorResponse{
			Error: investmentErr.Message,
			Code:  string(investmentErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForInvestmentError maps investment error codes to HTTP status codes.
func (c *InvestmentController) getStatusCodeForInvestmentError(code domainerror.InvestmentErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvestmentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRateFeedUnavailable:
		return http.StatusBadGateway
	case domainerror.ErrCodeInvalidInvestmentAmount,
		domainerror.ErrCodeInvalidInvestmentType,
		domainerror.ErrCodeUnknownCurrency,
		domainerror.ErrCodeMissingInvestmentFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
