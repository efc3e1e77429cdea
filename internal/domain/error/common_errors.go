// Package error defines domain-specific errors for the life tracker application.
package error

import "errors"

// ErrInvalidDateFormat is returned when a date cannot be parsed as YYYY-MM-DD.
var ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
