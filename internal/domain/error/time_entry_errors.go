// Package error defines domain-specific errors for the life tracker application.
package error

import "errors"

// Time entry domain errors.
var (
	// ErrTimeEntryNotFound is returned when a time entry is not found in the system.
	ErrTimeEntryNotFound = errors.New("time entry not found")

	// ErrInvalidTimeEntryAction is returned when an update asks for anything other than stop.
	ErrInvalidTimeEntryAction = errors.New("invalid time entry action")

	// ErrTimeEntryAlreadyStopped is returned when stopping an entry that has an end time.
	ErrTimeEntryAlreadyStopped = errors.New("time entry already stopped")
)

// TimeEntryErrorCode defines error codes for time entry errors.
// Format: TIM-XXYYYY where XX is category and YYYY is specific error.
type TimeEntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTimeEntryNotFound      TimeEntryErrorCode = "TIM-010001"
	ErrCodeInvalidTimeEntryAction TimeEntryErrorCode = "TIM-010002"
	ErrCodeMissingTimeEntryFields TimeEntryErrorCode = "TIM-010003"

	// State errors (02XXXX)
	ErrCodeTimeEntryAlreadyStopped TimeEntryErrorCode = "TIM-020001"
)

// TimeEntryError represents a time entry error with code and message.
type TimeEntryError struct {
	Code    TimeEntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TimeEntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TimeEntryError) Unwrap() error {
	return e.Err
}

// NewTimeEntryError creates a new TimeEntryError with the given code and message.
func NewTimeEntryError(code TimeEntryErrorCode, message string, err error) *TimeEntryError {
	return &TimeEntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
