package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// DebtRepository defines the interface for debt and payment persistence operations.
type DebtRepository interface {
	// Create creates a new debt in the database.
	Create(ctx context.Context, debt *entity.Debt) error

	// FindByID retrieves a debt by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// FindAll retrieves every debt, newest first.
	FindAll(ctx context.Context) ([]*entity.Debt, error)

	// GetSummary sums remaining amounts and monthly payments over all debts.
	GetSummary(ctx context.Context) (*entity.DebtSummary, error)

	// Update updates an existing debt in the database.
	Update(ctx context.Context, debt *entity.Debt) error

	// Delete removes a debt and its payments.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindPayments retrieves the payments of a debt, latest payment date first.
	FindPayments(ctx context.Context, debtID uuid.UUID) ([]*entity.DebtPayment, error)

	// RecordPayment stores a payment and lowers the debt's remaining amount
	// in one transaction, returning the updated debt.
	RecordPayment(ctx context.Context, payment *entity.DebtPayment) (*entity.Debt, error)
}
