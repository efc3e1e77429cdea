// Package error defines domain-specific errors for the life tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the amount is zero or negative.
	ErrInvalidExpenseAmount = errors.New("invalid expense amount")

	// ErrInvalidExpenseCategory is returned when the category is unknown.
	ErrInvalidExpenseCategory = errors.New("invalid expense category")

	// ErrInvalidExpenseMonth is returned when the month filter cannot be parsed.
	ErrInvalidExpenseMonth = errors.New("invalid month, expected YYYY-MM")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseNotFound        ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount   ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidExpenseCategory ExpenseErrorCode = "EXP-010003"
	ErrCodeMissingExpenseFields   ExpenseErrorCode = "EXP-010004"
	ErrCodeInvalidExpenseDate     ExpenseErrorCode = "EXP-010005"
	ErrCodeInvalidExpenseMonth    ExpenseErrorCode = "EXP-010006"
)

// ExpenseError represents a expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
