// Package error defines domain-specific errors for the life tracker application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrSchemaMissing is returned when an aggregate query hits a table that has not been migrated.
	ErrSchemaMissing = errors.New("analytics table does not exist")

	// ErrAggregateFailed is returned when an aggregate query fails for any other reason.
	ErrAggregateFailed = errors.New("analytics aggregate query failed")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Data errors (01XXXX)
	ErrCodeSchemaMissing   AnalyticsErrorCode = "ANL-010001"
	ErrCodeAggregateFailed AnalyticsErrorCode = "ANL-010002"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
