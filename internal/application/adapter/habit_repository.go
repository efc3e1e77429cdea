package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// HabitRepository defines the interface for habit persistence operations.
type HabitRepository interface {
	// Create creates a new habit in the database.
	Create(ctx context.Context, habit *entity.Habit) error

	// FindByID retrieves a habit by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)

	// FindAll retrieves every habit, newest first.
	FindAll(ctx context.Context) ([]*entity.Habit, error)

	// Delete removes a habit and its completions.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindCompletionsSince retrieves completions dated on or after since, newest first.
	FindCompletionsSince(ctx context.Context, since time.Time) ([]*entity.HabitCompletion, error)

	// IncrementCompletion records one completion of a habit on date, creating the row when needed.
	IncrementCompletion(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitCompletion, error)
}
