package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// WishlistItemModel represents the wishlist table in the database.
type WishlistItemModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ItemName  string           `gorm:"type:varchar(255);not null"`
	Price     *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Priority  string           `gorm:"type:varchar(10);not null;default:'medium'"`
	URL       string           `gorm:"column:url;type:text"`
	Purchased bool             `gorm:"not null;default:false;index"`
	CreatedAt time.Time        `gorm:"not null"`
	UpdatedAt time.Time        `gorm:"not null"`
}

// TableName returns the table name for the WishlistItemModel.
func (WishlistItemModel) TableName() string {
	return "wishlist"
}

// ToEntity converts a WishlistItemModel to a domain WishlistItem entity.
func (m *WishlistItemModel) ToEntity() *entity.WishlistItem {
	return &entity.WishlistItem{
		ID:        m.ID,
		ItemName:  m.ItemName,
		Price:     m.Price,
		Priority:  entity.Priority(m.Priority),
		URL:       m.URL,
		Purchased: m.Purchased,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// WishlistItemFromEntity creates a WishlistItemModel from a domain WishlistItem entity.
func WishlistItemFromEntity(item *entity.WishlistItem) *WishlistItemModel {
	return &WishlistItemModel{
		ID:        item.ID,
		ItemName:  item.ItemName,
		Price:     item.Price,
		Priority:  string(item.Priority),
		URL:       item.URL,
		Purchased: item.Purchased,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
