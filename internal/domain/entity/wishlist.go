package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WishlistItem represents something the user wants to buy.
type WishlistItem struct {
	ID        uuid.UUID
	ItemName  string
	Price     *decimal.Decimal
	Priority  Priority
	URL       string
	Purchased bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWishlistItem creates a new unpurchased WishlistItem entity.
func NewWishlistItem(itemName string, price *decimal.Decimal, priority Priority, url string) *WishlistItem {
	now := time.Now().UTC()

	return &WishlistItem{
		ID:        uuid.New(),
		ItemName:  itemName,
		Price:     price,
		Priority:  priority,
		URL:       url,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
