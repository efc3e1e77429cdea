// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

// monthLayout is the format of the month filter.
const monthLayout = "2006-01"

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	Month string // Optional, YYYY-MM
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles listing expenses logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	var filter adapter.ExpenseFilter

	if input.Month != "" {
		start, err := time.Parse(monthLayout, input.Month)
		if err != nil {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseMonth,
				"month must use the YYYY-MM format",
				domainerror.ErrInvalidExpenseMonth,
			)
		}
		end := start.AddDate(0, 1, 0)
		filter.From = &start
		filter.To = &end
	}

	expenses, err := uc.expenseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{
		Expenses: expenses,
	}, nil
}
