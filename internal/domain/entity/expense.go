package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory groups expenses.
type ExpenseCategory string

const (
	ExpenseCategoryFood          ExpenseCategory = "food"
	ExpenseCategoryTransport     ExpenseCategory = "transport"
	ExpenseCategoryShopping      ExpenseCategory = "shopping"
	ExpenseCategoryEntertainment ExpenseCategory = "entertainment"
	ExpenseCategoryBills         ExpenseCategory = "bills"
	ExpenseCategoryHealth        ExpenseCategory = "health"
	ExpenseCategoryOther         ExpenseCategory = "other"
)

// IsValid reports whether c is a known expense category.
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryFood, ExpenseCategoryTransport, ExpenseCategoryShopping,
		ExpenseCategoryEntertainment, ExpenseCategoryBills, ExpenseCategoryHealth,
		ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense represents money spent on a given day.
type Expense struct {
	ID        uuid.UUID
	Title     string
	Amount    decimal.Decimal
	Category  ExpenseCategory
	Date      time.Time
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(title string, amount decimal.Decimal, category ExpenseCategory, date time.Time, notes string) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:        uuid.New(),
		Title:     title,
		Amount:    amount,
		Category:  category,
		Date:      date,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
