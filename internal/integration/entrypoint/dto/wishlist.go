package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// CreateWishlistItemRequest represents the request body for wishlist item creation.
type CreateWishlistItemRequest struct {
	ItemName string           `json:"item_name"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Priority *string          `json:"priority,omitempty"`
	URL      string           `json:"url"`
}

// UpdateWishlistItemRequest toggles the purchased flag.
type UpdateWishlistItemRequest struct {
	Purchased *bool `json:"purchased"`
}

// WishlistItemResponse represents a single wishlist item in API responses.
type WishlistItemResponse struct {
	ID        string           `json:"id"`
	ItemName  string           `json:"item_name"`
	Price     *decimal.Decimal `json:"price"`
	Priority  string           `json:"priority"`
	URL       string           `json:"url"`
	Purchased bool             `json:"purchased"`
	CreatedAt time.Time        `json:"created_at"`
}

// WishlistItemEnvelope wraps a single wishlist item.
type WishlistItemEnvelope struct {
	Item WishlistItemResponse `json:"item"`
}

// WishlistListResponse represents the response for listing the wishlist.
type WishlistListResponse struct {
	Items []WishlistItemResponse `json:"items"`
}

// ToWishlistItemResponse converts a domain WishlistItem to its DTO.
func ToWishlistItemResponse(item *entity.WishlistItem) WishlistItemResponse {
	return WishlistItemResponse{
		ID:        item.ID.String(),
		ItemName:  item.ItemName,
		Price:     item.Price,
		Priority:  string(item.Priority),
		URL:       item.URL,
		Purchased: item.Purchased,
		CreatedAt: item.CreatedAt,
	}
}

// ToWishlistListResponse converts a list of wishlist items.
func ToWishlistListResponse(items []*entity.WishlistItem) WishlistListResponse {
	responses := make([]WishlistItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToWishlistItemResponse(item)
	}
	return WishlistListResponse{Items: responses}
}
