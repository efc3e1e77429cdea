package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// WishlistRepository defines the interface for wishlist persistence operations.
type WishlistRepository interface {
	// Create creates a new wishlist item in the database.
	Create(ctx context.Context, item *entity.WishlistItem) error

	// FindByID retrieves a wishlist item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WishlistItem, error)

	// FindAll retrieves every item, unpurchased and high priority first.
	FindAll(ctx context.Context) ([]*entity.WishlistItem, error)

	// Update updates an existing wishlist item in the database.
	Update(ctx context.Context, item *entity.WishlistItem) error

	// Delete removes a wishlist item from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
