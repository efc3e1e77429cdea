// Package error defines domain-specific errors for the life tracker application.
package error

import "errors"

// Investment domain errors.
var (
	// ErrInvestmentNotFound is returned when an investment is not found in the system.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrInvalidInvestmentAmount is returned when the amount is zero or negative, or a price is negative.
	ErrInvalidInvestmentAmount = errors.New("invalid investment amount")

	// ErrInvalidInvestmentType is returned when the investment type is unknown.
	ErrInvalidInvestmentType = errors.New("invalid investment type")

	// ErrUnknownCurrency is returned when no exchange rate exists for the currency.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrRateFeedUnavailable is returned when the exchange rate feed cannot be fetched or parsed.
	ErrRateFeedUnavailable = errors.New("exchange rate feed unavailable")
)

// InvestmentErrorCode defines error codes for investment errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvestmentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvestmentNotFound      InvestmentErrorCode = "INV-010001"
	ErrCodeInvalidInvestmentAmount InvestmentErrorCode = "INV-010002"
	ErrCodeInvalidInvestmentType   InvestmentErrorCode = "INV-010003"
	ErrCodeUnknownCurrency         InvestmentErrorCode = "INV-010004"
	ErrCodeMissingInvestmentFields InvestmentErrorCode = "INV-010005"

	// Exchange rate errors (02XXXX)
	ErrCodeRateFeedUnavailable InvestmentErrorCode = "INV-020001"
)

// InvestmentError represents a investment error with code and message.
type InvestmentError struct {
	Code    InvestmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvestmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvestmentError) Unwrap() error {
	return e.Err
}

// NewInvestmentError creates a new InvestmentError with the given code and message.
func NewInvestmentError(code InvestmentErrorCode, message string, err error) *InvestmentError {
	return &InvestmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
