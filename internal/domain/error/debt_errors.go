// Package error defines domain-specific errors for the life tracker application.
package error

import "errors"

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt is not found in the system.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrInvalidDebtAmount is returned when the total amount is zero or negative, or another amount is negative.
	ErrInvalidDebtAmount = errors.New("invalid debt amount")

	// ErrInvalidDebtType is returned when the debt type is unknown.
	ErrInvalidDebtType = errors.New("invalid debt type")

	// ErrInvalidDueDay is returned when the due day is out of range.
	ErrInvalidDueDay = errors.New("due date must be a day of month between 1 and 31")

	// ErrInvalidPaymentAmount is returned when a payment amount is zero or negative.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeDebtNotFound      DebtErrorCode = "DBT-010001"
	ErrCodeInvalidDebtAmount DebtErrorCode = "DBT-010002"
	ErrCodeInvalidDebtType   DebtErrorCode = "DBT-010003"
	ErrCodeInvalidDueDay     DebtErrorCode = "DBT-010004"
	ErrCodeMissingDebtFields DebtErrorCode = "DBT-010005"

	// Payment errors (02XXXX)
	ErrCodeInvalidPaymentAmount DebtErrorCode = "DBT-020001"
	ErrCodeInvalidPaymentDate   DebtErrorCode = "DBT-020002"
	ErrCodeMissingPaymentFields DebtErrorCode = "DBT-020003"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
