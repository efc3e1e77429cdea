package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Title    string           `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Category *string          `json:"category,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Notes    string           `json:"notes"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Date      string          `json:"date"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
}

// ExpenseEnvelope wraps a single expense.
type ExpenseEnvelope struct {
	Expense ExpenseResponse `json:"expense"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense to its DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:        e.ID.String(),
		Title:     e.Title,
		Amount:    e.Amount,
		Category:  string(e.Category),
		Date:      e.Date.Format(DateLayout),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}

// ToExpenseListResponse converts a list of expenses.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: responses}
}
