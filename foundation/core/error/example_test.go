// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the structured error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive examples
// - 2026-10-14 v0.2.0: Examples rewritten around range and format errors

package error

import (
	"errors"
	"fmt"
	"strconv"
)

// ExampleNew demonstrates creating a new error with a code and details
func ExampleNew() {
	err := New("hours must be between 0 and 23").
		WithCode(CodeValueOutOfRange).
		WithDetail("field", "hours").
		WithDetail("value", 41)

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: hours must be between 0 and 23
	// Code: VALUE_OUT_OF_RANGE
	// Severity: low
}

// ExampleWrap demonstrates wrapping a standard library error
func ExampleWrap() {
	_, convErr := strconv.Atoi("ab")

	err := Wrap(convErr, "segment is not numeric").
		WithCode(CodeInvalidFormat).
		WithOperation("timex.Parse")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())

	// Output:
	// Error: segment is not numeric: strconv.Atoi: parsing "ab": invalid syntax
	// Code: INVALID_FORMAT
}

// ExampleError_Is demonstrates matching against a sentinel by code
func ExampleError_Is() {
	errOutOfRange := New("value out of range").WithCode(CodeValueOutOfRange)

	err := New("minutes must be between 0 and 59").WithCode(CodeValueOutOfRange)

	fmt.Println(errors.Is(err, errOutOfRange))

	// Output:
	// true
}
