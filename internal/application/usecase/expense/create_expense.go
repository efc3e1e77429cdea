package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/domain/valueobject"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Title    string
	Amount   decimal.Decimal
	Category *entity.ExpenseCategory // Optional, defaults to other
	Date     *time.Time              // Optional, defaults to today
	Notes    string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, clock adapter.Clock) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"title is required",
			nil,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	category := entity.ExpenseCategoryOther
	if input.Category != nil && *input.Category != "" {
		if !input.Category.IsValid() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseCategory,
				"unknown expense category",
				domainerror.ErrInvalidExpenseCategory,
			)
		}
		category = *input.Category
	}

	date := valueobject.DateKey(uc.clock.Now())
	if input.Date != nil {
		date = valueobject.DateKey(*input.Date)
	}

	expense := entity.NewExpense(title, input.Amount, category, date, input.Notes)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}
