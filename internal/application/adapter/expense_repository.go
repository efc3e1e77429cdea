package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// ExpenseFilter restricts an expense listing to a date range [From, To).
type ExpenseFilter struct {
	From *time.Time
	To   *time.Time
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindAll retrieves expenses matching the filter, most recent first.
	FindAll(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
