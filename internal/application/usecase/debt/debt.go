// Package debt contains debt and repayment use cases.
package debt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

// ListDebtsOutput represents the output of listing debts.
type ListDebtsOutput struct {
	Debts   []*entity.Debt
	Summary *entity.DebtSummary
}

// ListDebtsUseCase handles listing debts with their totals.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the listing.
func (uc *ListDebtsUseCase) Execute(ctx context.Context) (*ListDebtsOutput, error) {
	debts, err := uc.debtRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	summary, err := uc.debtRepo.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize debts: %w", err)
	}

	return &ListDebtsOutput{
		Debts:   debts,
		Summary: summary,
	}, nil
}

// DebtInput carries the editable fields of a debt.
type DebtInput struct {
	Name            string
	Type            *entity.DebtType // Optional, defaults to credit_card
	TotalAmount     decimal.Decimal
	RemainingAmount *decimal.Decimal // Optional, defaults to the total
	MonthlyPayment  decimal.Decimal
	InterestRate    decimal.Decimal
	DueDay          *int // Optional, defaults to 25
	Notes           string
}

// normalizedDebt is a validated DebtInput with defaults applied.
type normalizedDebt struct {
	name      string
	debtType  entity.DebtType
	total     decimal.Decimal
	remaining decimal.Decimal
	dueDay    int
}

func normalize(input DebtInput) (*normalizedDebt, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeMissingDebtFields,
			"name is required",
			nil,
		)
	}

	if !input.TotalAmount.IsPositive() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtAmount,
			"total amount must be greater than zero",
			domainerror.ErrInvalidDebtAmount,
		)
	}

	remaining := input.TotalAmount
	if input.RemainingAmount != nil {
		remaining = *input.RemainingAmount
	}
	if remaining.IsNegative() || input.MonthlyPayment.IsNegative() || input.InterestRate.IsNegative() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtAmount,
			"amounts must not be negative",
			domainerror.ErrInvalidDebtAmount,
		)
	}

	debtType := entity.DebtTypeCreditCard
	if input.Type != nil && *input.Type != "" {
		if !input.Type.IsValid() {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeInvalidDebtType,
				"unknown debt type",
				domainerror.ErrInvalidDebtType,
			)
		}
		debtType = *input.Type
	}

	dueDay := entity.DefaultDebtDueDay
	if input.DueDay != nil {
		if *input.DueDay < 1 || *input.DueDay > 31 {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeInvalidDueDay,
				"due date must be between 1 and 31",
				domainerror.ErrInvalidDueDay,
			)
		}
		dueDay = *input.DueDay
	}

	return &normalizedDebt{
		name:      name,
		debtType:  debtType,
		total:     input.TotalAmount,
		remaining: remaining,
		dueDay:    dueDay,
	}, nil
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt *entity.Debt
}

// CreateDebtUseCase handles debt creation.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input DebtInput) (*CreateDebtOutput, error) {
	n, err := normalize(input)
	if err != nil {
		return nil, err
	}

	debt := entity.NewDebt(n.name, n.debtType, n.total, n.remaining, input.MonthlyPayment, input.InterestRate, n.dueDay, input.Notes)

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	return &CreateDebtOutput{
		Debt: debt,
	}, nil
}

// UpdateDebtInput represents the input for debt update.
type UpdateDebtInput struct {
	DebtID uuid.UUID
	DebtInput
}

// UpdateDebtOutput represents the output of debt update.
type UpdateDebtOutput struct {
	Debt *entity.Debt
}

// UpdateDebtUseCase replaces the editable fields of a debt.
type UpdateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(debtRepo adapter.DebtRepository) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the update.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) (*UpdateDebtOutput, error) {
	n, err := normalize(input.DebtInput)
	if err != nil {
		return nil, err
	}

	debt, err := findDebt(ctx, uc.debtRepo, input.DebtID)
	if err != nil {
		return nil, err
	}

	debt.Name = n.name
	debt.Type = n.debtType
	debt.TotalAmount = n.total
	debt.RemainingAmount = n.remaining
	debt.MonthlyPayment = input.MonthlyPayment
	debt.InterestRate = input.InterestRate
	debt.DueDay = n.dueDay
	debt.Notes = input.Notes
	debt.UpdatedAt = time.Now().UTC()

	if err := uc.debtRepo.Update(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}

	return &UpdateDebtOutput{
		Debt: debt,
	}, nil
}

// DeleteDebtInput represents the input for debt deletion.
type DeleteDebtInput struct {
	DebtID uuid.UUID
}

// DeleteDebtUseCase handles debt deletion. Payments are removed with it.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) error {
	if _, err := findDebt(ctx, uc.debtRepo, input.DebtID); err != nil {
		return err
	}

	if err := uc.debtRepo.Delete(ctx, input.DebtID); err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}

	return nil
}

func findDebt(ctx context.Context, repo adapter.DebtRepository, id uuid.UUID) (*entity.Debt, error) {
	debt, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtNotFound,
				"debt not found",
				domainerror.ErrDebtNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find debt: %w", err)
	}
	return debt, nil
}
