// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised across tod. Codes classify an
//              error independent of its message and drive errors.Is matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Trimmed to codes used by timex, config and the CLI

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeInvalidOperation,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange:
		return 2
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 3
	default:
		return 1
	}
}
