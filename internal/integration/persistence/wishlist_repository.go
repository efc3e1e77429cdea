package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/persistence/model"
)

const wishlistOrder = "purchased ASC, CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, created_at DESC"

// wishlistRepository implements the adapter.WishlistRepository interface.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a new wishlist repository instance.
func NewWishlistRepository(db *gorm.DB) adapter.WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

// Create creates a new wishlist item in the database.
func (r *wishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	result := r.db.WithContext(ctx).Create(model.WishlistItemFromEntity(item))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a wishlist item by its ID.
func (r *wishlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WishlistItem, error) {
	var itemModel model.WishlistItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrWishlistItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindAll retrieves every wishlist item, open items first.
func (r *wishlistRepository) FindAll(ctx context.Context) ([]*entity.WishlistItem, error) {
	var itemModels []model.WishlistItemModel
	result := r.db.WithContext(ctx).Order(wishlistOrder).Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.WishlistItem, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items, nil
}

// Update updates an existing wishlist item in the database.
func (r *wishlistRepository) Update(ctx context.Context, item *entity.WishlistItem) error {
	result := r.db.WithContext(ctx).Save(model.WishlistItemFromEntity(item))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a wishlist item from the database.
func (r *wishlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.WishlistItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrWishlistItemNotFound
	}
	return nil
}
