// Package error defines domain-specific errors for the life tracker application.
package error

import "errors"

// Settings domain errors.
var (
	// ErrInvalidSalary is returned when the monthly salary is negative.
	ErrInvalidSalary = errors.New("monthly salary must not be negative")

	// ErrInvalidSalaryDate is returned when the salary date is out of range.
	ErrInvalidSalaryDate = errors.New("salary date must be a day of month between 1 and 31")

	// ErrInvalidHealthMetric is returned when a body metric is zero or negative.
	ErrInvalidHealthMetric = errors.New("weight and height must be greater than zero")

	// ErrInvalidBirthDate is returned when the birth date lies in the future.
	ErrInvalidBirthDate = errors.New("birth date must be in the past")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Salary errors (01XXXX)
	ErrCodeInvalidSalary         SettingsErrorCode = "SET-010001"
	ErrCodeInvalidSalaryDate     SettingsErrorCode = "SET-010002"
	ErrCodeMissingSettingsFields SettingsErrorCode = "SET-010003"

	// Health errors (02XXXX)
	ErrCodeInvalidHealthMetric SettingsErrorCode = "SET-020001"
	ErrCodeInvalidBirthDate    SettingsErrorCode = "SET-020002"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
