package wishlist

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

type fakeWishlistRepository struct {
	items map[uuid.UUID]*entity.WishlistItem
}

func newFakeWishlistRepository() *fakeWishlistRepository {
	return &fakeWishlistRepository{items: make(map[uuid.UUID]*entity.WishlistItem)}
}

func (r *fakeWishlistRepository) Create(_ context.Context, item *entity.WishlistItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeWishlistRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.WishlistItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domainerror.ErrWishlistItemNotFound
	}
	return item, nil
}

func (r *fakeWishlistRepository) FindAll(_ context.Context) ([]*entity.WishlistItem, error) {
	items := make([]*entity.WishlistItem, 0, len(r.items))
	for _, i := range r.items {
		items = append(items, i)
	}
	return items, nil
}

func (r *fakeWishlistRepository) Update(_ context.Context, item *entity.WishlistItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeWishlistRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func wishlistErrorCode(t *testing.T, err error) domainerror.WishlistErrorCode {
	t.Helper()
	var wishlistErr *domainerror.WishlistError
	if !errors.As(err, &wishlistErr) {
		t.Fatalf("expected WishlistError, got %v", err)
	}
	return wishlistErr.Code
}

func TestCreateItemUseCase(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	price := decimal.NewFromInt(1299)
	urgent := entity.Priority("urgent")

	tests := []struct {
		name         string
		input        CreateItemInput
		expectedCode domainerror.WishlistErrorCode
	}{
		{name: "valid item", input: CreateItemInput{ItemName: "Headphones", Price: &price}},
		{name: "item without price", input: CreateItemInput{ItemName: "Book"}},
		{name: "missing name", input: CreateItemInput{}, expectedCode: domainerror.ErrCodeMissingWishlistFields},
		{name: "negative price", input: CreateItemInput{ItemName: "x", Price: &negative}, expectedCode: domainerror.ErrCodeInvalidWishlistPrice},
		{name: "bad priority", input: CreateItemInput{ItemName: "x", Priority: &urgent}, expectedCode: domainerror.ErrCodeInvalidWishlistPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := NewCreateItemUseCase(newFakeWishlistRepository()).Execute(context.Background(), tt.input)
			if tt.expectedCode != "" {
				if code := wishlistErrorCode(t, err); code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Item.Purchased {
				t.Error("expected new item to be unpurchased")
			}
			if output.Item.Priority != entity.PriorityMedium {
				t.Errorf("expected medium priority, got %s", output.Item.Priority)
			}
		})
	}
}

func TestSetPurchasedAndDelete(t *testing.T) {
	repo := newFakeWishlistRepository()
	item := entity.NewWishlistItem("Bike", nil, entity.PriorityHigh, "")
	repo.items[item.ID] = item

	output, err := NewSetPurchasedUseCase(repo).Execute(context.Background(), SetPurchasedInput{ItemID: item.ID, Purchased: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Item.Purchased {
		t.Error("expected item to be purchased")
	}

	_, err = NewSetPurchasedUseCase(repo).Execute(context.Background(), SetPurchasedInput{ItemID: uuid.New()})
	if code := wishlistErrorCode(t, err); code != domainerror.ErrCodeWishlistItemNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeWishlistItemNotFound, code)
	}

	if err := NewDeleteItemUseCase(repo).Execute(context.Background(), DeleteItemInput{ItemID: item.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.items) != 0 {
		t.Error("expected item to be removed")
	}
}
