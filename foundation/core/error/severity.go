// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severity to
//              a log level when an error is reported through LogError.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-14 v0.1.1: Severity mapping follows the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates rejected user input, such as an unparsable time
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error, such as an unusable configuration
	SeverityHigh

	// SeverityCritical indicates a broken internal invariant
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
