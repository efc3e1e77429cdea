package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifetracker/backend/internal/application/usecase/debt"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/entrypoint/dto"
)

// DebtController handles debt and payment endpoints.
type DebtController struct {
	listUseCase          *debt.ListDebtsUseCase
	createUseCase        *debt.CreateDebtUseCase
	updateUseCase        *debt.UpdateDebtUseCase
	deleteUseCase        *debt.DeleteDebtUseCase
	listPaymentsUseCase  *debt.ListPaymentsUseCase
	recordPaymentUseCase *debt.RecordPaymentUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	createUseCase *debt.CreateDebtUseCase,
	updateUseCase *debt.UpdateDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
	listPaymentsUseCase *debt.ListPaymentsUseCase,
	recordPaymentUseCase *debt.RecordPaymentUseCase,
) *DebtController {
	return &DebtController{
		listUseCase:          listUseCase,
		createUseCase:        createUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		listPaymentsUseCase:  listPaymentsUseCase,
		recordPaymentUseCase: recordPaymentUseCase,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtListResponse(output.Debts, output.Summary))
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	var req dto.DebtRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingDebtFields)) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), toDebtInput(req))
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.DebtEnvelope{Debt: dto.ToDebtResponse(output.Debt)})
}

// Update handles PUT /debts/:id requests.
func (c *DebtController) Update(ctx *gin.Context) {
	debtID, ok := parseID(ctx, "debt")
	if !ok {
		return
	}

	var req dto.DebtRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingDebtFields)) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), debt.UpdateDebtInput{
		DebtID:    debtID,
		DebtInput: toDebtInput(req),
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DebtEnvelope{Debt: dto.ToDebtResponse(output.Debt)})
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	debtID, ok := parseID(ctx, "debt")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{DebtID: debtID}); err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListPayments handles GET /debts/:id/payments requests.
func (c *DebtController) ListPayments(ctx *gin.Context) {
	debtID, ok := parseID(ctx, "debt")
	if !ok {
		return
	}

	output, err := c.listPaymentsUseCase.Execute(ctx.Request.Context(), debt.ListPaymentsInput{DebtID: debtID})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(output.Payments))
}

// RecordPayment handles POST /debts/:id/payments requests.
func (c *DebtController) RecordPayment(ctx *gin.Context) {
	debtID, ok := parseID(ctx, "debt")
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingPaymentFields)) {
		return
	}

	if req.Amount == nil || req.PaymentDate == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "amount and payment_date are required",
			Code:  string(domainerror.ErrCodeMissingPaymentFields),
		})
		return
	}

	paymentDate, err := dto.ParseDate(req.PaymentDate)
	if err != nil || paymentDate == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: domainerror.ErrInvalidDateFormat.Error(),
			Code:  string(domainerror.ErrCodeInvalidPaymentDate),
		})
		return
	}

	output, err := c.recordPaymentUseCase.Execute(ctx.Request.Context(), debt.RecordPaymentInput{
		DebtID:      debtID,
		Amount:      *req.Amount,
		PaymentDate: *paymentDate,
		Notes:       req.Notes,
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.PaymentEnvelope{
		Payment: dto.ToPaymentResponse(output.Payment),
		Debt:    dto.ToDebtResponse(output.Debt),
	})
}

func toDebtInput(req dto.DebtRequest) debt.DebtInput {
	input := debt.DebtInput{
		Name:            req.Name,
		TotalAmount:     dto.DecimalOrZero(req.TotalAmount),
		RemainingAmount: req.RemainingAmount,
		MonthlyPayment:  dto.DecimalOrZero(req.MonthlyPayment),
		InterestRate:    dto.DecimalOrZero(req.InterestRate),
		DueDay:          req.DueDate,
		Notes:           req.Notes,
	}
	if req.Type != nil {
		debtType := entity.DebtType(*req.Type)
		input.Type = &debtType
	}
	return input
}

// handleDebtError handles debt errors and returns appropriate HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var debtErr *domainerror.DebtError
	if errors.As(err, &debtErr) {
		ctx.JSON(c.getStatusCodeForDebtError(debtErr.Code), dto.ErrorResponse{
			Error: debtErr.Message,
			Code:  string(debtErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForDebtError maps debt error codes to HTTP status codes.
func (c *DebtController) getStatusCodeForDebtError(code domainerror.DebtErrorCode) int {
	switch code {
	case domainerror.ErrCodeDebtNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidDebtAmount,
		domainerror.ErrCodeInvalidDebtType,
		domainerror.ErrCodeInvalidDueDay,
		domainerror.ErrCodeMissingDebtFields,
		domainerror.ErrCodeInvalidPaymentAmount,
		domainerror.ErrCodeInvalidPaymentDate,
		domainerror.ErrCodeMissingPaymentFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
