package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// InvestmentRepository defines the interface for investment persistence operations.
type InvestmentRepository interface {
	// Create creates a new investment in the database.
	Create(ctx context.Context, investment *entity.Investment) error

	// FindByID retrieves an investment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// FindAll retrieves every investment, newest first.
	FindAll(ctx context.Context) ([]*entity.Investment, error)

	// GetSummary sums THB values overall and per investment type.
	GetSummary(ctx context.Context) (*entity.InvestmentSummary, error)

	// Update updates an existing investment in the database.
	Update(ctx context.Context, investment *entity.Investment) error

	// Delete removes an investment from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
