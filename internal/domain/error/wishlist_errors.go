// Package error defines domain-specific errors for the life tracker application.
package error

import "errors"

// Wishlist domain errors.
var (
	// ErrWishlistItemNotFound is returned when a wishlist item is not found in the system.
	ErrWishlistItemNotFound = errors.New("wishlist item not found")

	// ErrInvalidWishlistPrice is returned when the price is negative.
	ErrInvalidWishlistPrice = errors.New("invalid wishlist price")

	// ErrInvalidWishlistPriority is returned when the priority is not low, medium or high.
	ErrInvalidWishlistPriority = errors.New("invalid wishlist priority")
)

// WishlistErrorCode defines error codes for wishlist errors.
// Format: WSH-XXYYYY where XX is category and YYYY is specific error.
type WishlistErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeWishlistItemNotFound    WishlistErrorCode = "WSH-010001"
	ErrCodeInvalidWishlistPrice    WishlistErrorCode = "WSH-010002"
	ErrCodeInvalidWishlistPriority WishlistErrorCode = "WSH-010003"
	ErrCodeMissingWishlistFields   WishlistErrorCode = "WSH-010004"
)

// WishlistError represents a wishlist error with code and message.
type WishlistError struct {
	Code    WishlistErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WishlistError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WishlistError) Unwrap() error {
	return e.Err
}

// NewWishlistError creates a new WishlistError with the given code and message.
func NewWishlistError(code WishlistErrorCode, message string, err error) *WishlistError {
	return &WishlistError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
