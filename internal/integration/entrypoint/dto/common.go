// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ParseDate parses an optional YYYY-MM-DD value. Nil or blank input yields nil.
func ParseDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	date, err := time.Parse(DateLayout, strings.TrimSpace(*value))
	if err != nil {
		return nil, domainerror.ErrInvalidDateFormat
	}
	return &date, nil
}

// FormatDate renders an optional date as YYYY-MM-DD.
func FormatDate(date *time.Time) *string {
	if date == nil {
		return nil
	}
	formatted := date.Format(DateLayout)
	return &formatted
}

// DecimalOrZero dereferences an optional amount.
func DecimalOrZero(value *decimal.Decimal) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return *value
}
