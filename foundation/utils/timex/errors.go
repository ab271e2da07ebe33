// File: errors.go
// Title: Time-of-Day Errors
// Description: Sentinel errors and constructors for range and format
//              violations raised by the timex package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"errors"

	coreerr "github.com/msto63/tod/foundation/core/error"
)

var (
	// ErrOutOfRange matches every error caused by a field outside its range
	// or a start bound after the end bound.
	ErrOutOfRange = coreerr.New("value out of range").WithCode(coreerr.CodeValueOutOfRange)

	// ErrInvalidFormat matches every error caused by malformed time text.
	ErrInvalidFormat = coreerr.New("invalid time format").WithCode(coreerr.CodeInvalidFormat)
)

// IsRangeError reports whether err is a range violation.
func IsRangeError(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsFormatError reports whether err is a format violation.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

func fieldRangeError(op, field string, value, max int) *coreerr.Error {
	return coreerr.Newf("%s must be between 0 and %d, got %d", field, max, value).
		WithCode(coreerr.CodeValueOutOfRange).
		WithOperation(op).
		WithDetails(map[string]interface{}{
			"field": field,
			"value": value,
			"min":   0,
			"max":   max,
		})
}

func formatError(op, input, reason string) *coreerr.Error {
	return coreerr.Newf("invalid time %q: %s", input, reason).
		WithCode(coreerr.CodeInvalidFormat).
		WithOperation(op).
		WithDetail("input", input)
}
