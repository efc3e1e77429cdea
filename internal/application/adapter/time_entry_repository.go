package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// TimeEntryRepository defines the interface for time entry persistence operations.
type TimeEntryRepository interface {
	// Create creates a new time entry in the database.
	Create(ctx context.Context, entry *entity.TimeEntry) error

	// FindByID retrieves a time entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeEntry, error)

	// FindRecent retrieves the latest entries by start time.
	FindRecent(ctx context.Context, limit int) ([]*entity.TimeEntry, error)

	// Update updates an existing time entry in the database.
	Update(ctx context.Context, entry *entity.TimeEntry) error

	// Delete removes a time entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
