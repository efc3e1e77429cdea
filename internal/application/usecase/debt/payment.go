package debt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/domain/valueobject"
)

// ListPaymentsInput represents the input for listing a debt's payments.
type ListPaymentsInput struct {
	DebtID uuid.UUID
}

// ListPaymentsOutput represents the output of listing payments.
type ListPaymentsOutput struct {
	Payments []*entity.DebtPayment
}

// ListPaymentsUseCase handles listing payments of one debt.
type ListPaymentsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(debtRepo adapter.DebtRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the listing.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	if _, err := findDebt(ctx, uc.debtRepo, input.DebtID); err != nil {
		return nil, err
	}

	payments, err := uc.debtRepo.FindPayments(ctx, input.DebtID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return &ListPaymentsOutput{
		Payments: payments,
	}, nil
}

// RecordPaymentInput represents the input for recording a payment.
type RecordPaymentInput struct {
	DebtID      uuid.UUID
	Amount      decimal.Decimal
	PaymentDate time.Time
	Notes       string
}

// RecordPaymentOutput represents the output of recording a payment.
type RecordPaymentOutput struct {
	Payment *entity.DebtPayment
	Debt    *entity.Debt
}

// RecordPaymentUseCase stores a repayment and lowers the remaining balance.
type RecordPaymentUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(debtRepo adapter.DebtRepository) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the payment.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidPaymentAmount,
		)
	}
	if input.PaymentDate.IsZero() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeMissingPaymentFields,
			"payment date is required",
			nil,
		)
	}

	payment := entity.NewDebtPayment(input.DebtID, input.Amount, valueobject.DateKey(input.PaymentDate), input.Notes)

	debt, err := uc.debtRepo.RecordPayment(ctx, payment)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtNotFound,
				"debt not found",
				domainerror.ErrDebtNotFound,
			)
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	return &RecordPaymentOutput{
		Payment: payment,
		Debt:    debt,
	}, nil
}
