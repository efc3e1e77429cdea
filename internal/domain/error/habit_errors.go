// Package error defines domain-specific errors for the life tracker application.
package error

import "errors"

// Habit domain errors.
var (
	// ErrHabitNotFound is returned when a habit is not found in the system.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrInvalidHabitFrequency is returned when the frequency is not daily or weekly.
	ErrInvalidHabitFrequency = errors.New("invalid habit frequency")

	// ErrInvalidTargetCount is returned when the target count is below one.
	ErrInvalidTargetCount = errors.New("target count must be at least 1")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HAB-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeHabitNotFound         HabitErrorCode = "HAB-010001"
	ErrCodeInvalidHabitFrequency HabitErrorCode = "HAB-010002"
	ErrCodeInvalidTargetCount    HabitErrorCode = "HAB-010003"
	ErrCodeMissingHabitFields    HabitErrorCode = "HAB-010004"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
