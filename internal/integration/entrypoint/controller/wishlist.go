package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifetracker/backend/internal/application/usecase/wishlist"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/entrypoint/dto"
)

// WishlistController handles wishlist endpoints.
type WishlistController struct {
	listUseCase         *wishlist.ListItemsUseCase
	createUseCase       *wishlist.CreateItemUseCase
	setPurchasedUseCase *wishlist.SetPurchasedUseCase
	deleteUseCase       *wishlist.DeleteItemUseCase
}

// NewWishlistController creates a new wishlist controller instance.
func NewWishlistController(
	listUseCase *wishlist.ListItemsUseCase,
	createUseCase *wishlist.CreateItemUseCase,
	setPurchasedUseCase *wishlist.SetPurchasedUseCase,
	deleteUseCase *wishlist.DeleteItemUseCase,
) *WishlistController {
	return &WishlistController{
		listUseCase:         listUseCase,
		createUseCase:       createUseCase,
		setPurchasedUseCase: setPurchasedUseCase,
		deleteUseCase:       deleteUseCase,
	}
}

// List handles GET /wishlist requests.
func (c *WishlistController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleWishlistError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWishlistListResponse(output.Items))
}

// Create handles POST /wishlist requests.
func (c *WishlistController) Create(ctx *gin.Context) {
	var req dto.CreateWishlistItemRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingWishlistFields)) {
		return
	}

	input := wishlist.CreateItemInput{
		ItemName: req.ItemName,
		Price:    req.Price,
		URL:      req.URL,
	}
	if req.Priority != nil {
		priority := entity.Priority(*req.Priority)
		input.Priority = &priority
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWishlistError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.WishlistItemEnvelope{Item: dto.ToWishlistItemResponse(output.Item)})
}

// Update handles PUT /wishlist/:id requests.
func (c *WishlistController) Update(ctx *gin.Context) {
	itemID, ok := parseID(ctx, "wishlist item")
	if !ok {
		return
	}

	var req dto.UpdateWishlistItemRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingWishlistFields)) {
		return
	}
	if req.Purchased == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "purchased is required",
			Code:  string(domainerror.ErrCodeMissingWishlistFields),
		})
		return
	}

	output, err := c.setPurchasedUseCase.Execute(ctx.Request.Context(), wishlist.SetPurchasedInput{
		ItemID:    itemID,
		Purchased: *req.Purchased,
	})
	if err != nil {
		c.handleWishlistError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.WishlistItemEnvelope{Item: dto.ToWishlistItemResponse(output.Item)})
}

// Delete handles DELETE /wishlist/:id requests.
func (c *WishlistController) Delete(ctx *gin.Context) {
	itemID, ok := parseID(ctx, "wishlist item")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), wishlist.DeleteItemInput{ItemID: itemID}); err != nil {
		c.handleWishlistError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleWishlistError handles wishlist errors and returns appropriate HTTP responses.
func (c *WishlistController) handleWishlistError(ctx *gin.Context, err error) {
	var wishlistErr *domainerror.WishlistError
	if errors.As(err, &wishlistErr) {
		ctx.JSON(c.getStatusCodeForWishlistError(wishlistErr.Code), dto.ErrorResponse{
			Error: wishlistErr.Message,
			Code:  string(wishlistErr.Code),
		})
		return
	}

	internalError(ctx, err)
}

// getStatusCodeForWishlistError maps wishlist error codes to HTTP status codes.
func (c *WishlistController) getStatusCodeForWishlistError(code domainerror.WishlistErrorCode) int {
	switch code {
	case domainerror.ErrCodeWishlistItemNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidWishlistPrice,
		domainerror.ErrCodeInvalidWishlistPriority,
		domainerror.ErrCodeMissingWishlistFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
