// Package wishlist contains wishlist-related use cases.
package wishlist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

// ListItemsOutput represents the output of listing wishlist items.
type ListItemsOutput struct {
	Items []*entity.WishlistItem
}

// ListItemsUseCase handles listing wishlist items.
type ListItemsUseCase struct {
	wishlistRepo adapter.WishlistRepository
}

// NewListItemsUseCase creates a new ListItemsUseCase instance.
func NewListItemsUseCase(wishlistRepo adapter.WishlistRepository) *ListItemsUseCase {
	return &ListItemsUseCase{
		wishlistRepo: wishlistRepo,
	}
}

// Execute performs the listing.
func (uc *ListItemsUseCase) Execute(ctx context.Context) (*ListItemsOutput, error) {
	items, err := uc.wishlistRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist items: %w", err)
	}

	return &ListItemsOutput{
		Items: items,
	}, nil
}

// CreateItemInput represents the input for wishlist item creation.
type CreateItemInput struct {
	ItemName string
	Price    *decimal.Decimal
	Priority *entity.Priority // Optional, defaults to medium
	URL      string
}

// CreateItemOutput represents the output of wishlist item creation.
type CreateItemOutput struct {
	Item *entity.WishlistItem
}

// CreateItemUseCase handles wishlist item creation.
type CreateItemUseCase struct {
	wishlistRepo adapter.WishlistRepository
}

// NewCreateItemUseCase creates a new CreateItemUseCase instance.
func NewCreateItemUseCase(wishlistRepo adapter.WishlistRepository) *CreateItemUseCase {
	return &CreateItemUseCase{
		wishlistRepo: wishlistRepo,
	}
}

// Execute performs the creation.
func (uc *CreateItemUseCase) Execute(ctx context.Context, input CreateItemInput) (*CreateItemOutput, error) {
	name := strings.TrimSpace(input.ItemName)
	if name == "" {
		return nil, domainerror.NewWishlistError(
			domainerror.ErrCodeMissingWishlistFields,
			"item name is required",
			nil,
		)
	}

	if input.Price != nil && input.Price.IsNegative() {
		return nil, domainerror.NewWishlistError(
			domainerror.ErrCodeInvalidWishlistPrice,
			"price must not be negative",
			domainerror.ErrInvalidWishlistPrice,
		)
	}

	priority := entity.PriorityMedium
	if input.Priority != nil && *input.Priority != "" {
		if !input.Priority.IsValid() {
			return nil, domainerror.NewWishlistError(
				domainerror.ErrCodeInvalidWishlistPriority,
				"priority must be 'low', 'medium', or 'high'",
				domainerror.ErrInvalidWishlistPriority,
			)
		}
		priority = *input.Priority
	}

	item := entity.NewWishlistItem(name, input.Price, priority, input.URL)

	if err := uc.wishlistRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create wishlist item: %w", err)
	}

	return &CreateItemOutput{
		Item: item,
	}, nil
}

// SetPurchasedInput represents the input for marking an item purchased or not.
type SetPurchasedInput struct {
	ItemID    uuid.UUID
	Purchased bool
}

// SetPurchasedOutput represents the output of the purchased toggle.
type SetPurchasedOutput struct {
	Item *entity.WishlistItem
}

// SetPurchasedUseCase handles the purchased flag of an item.
type SetPurchasedUseCase struct {
	wishlistRepo adapter.WishlistRepository
}

// NewSetPurchasedUseCase creates a new SetPurchasedUseCase instance.
func NewSetPurchasedUseCase(wishlistRepo adapter.WishlistRepository) *SetPurchasedUseCase {
	return &SetPurchasedUseCase{
		wishlistRepo: wishlistRepo,
	}
}

// Execute sets the purchased flag.
func (uc *SetPurchasedUseCase) Execute(ctx context.Context, input SetPurchasedInput) (*SetPurchasedOutput, error) {
	item, err := findItem(ctx, uc.wishlistRepo, input.ItemID)
	if err != nil {
		return nil, err
	}

	item.Purchased = input.Purchased
	item.UpdatedAt = time.Now().UTC()

	if err := uc.wishlistRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update wishlist item: %w", err)
	}

	return &SetPurchasedOutput{
		Item: item,
	}, nil
}

// DeleteItemInput represents the input for wishlist item deletion.
type DeleteItemInput struct {
	ItemID uuid.UUID
}

// DeleteItemUseCase handles wishlist item deletion.
type DeleteItemUseCase struct {
	wishlistRepo adapter.WishlistRepository
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(wishlistRepo adapter.WishlistRepository) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		wishlistRepo: wishlistRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, input DeleteItemInput) error {
	if _, err := findItem(ctx, uc.wishlistRepo, input.ItemID); err != nil {
		return err
	}

	if err := uc.wishlistRepo.Delete(ctx, input.ItemID); err != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", err)
	}

	return nil
}

func findItem(ctx context.Context, repo adapter.WishlistRepository, id uuid.UUID) (*entity.WishlistItem, error) {
	item, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrWishlistItemNotFound) {
			return nil, domainerror.NewWishlistError(
				domainerror.ErrCodeWishlistItemNotFound,
				"wishlist item not found",
				domainerror.ErrWishlistItemNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find wishlist item: %w", err)
	}
	return item, nil
}
