// File: validation.go
// Title: Configuration Validation Implementation
// Description: Checks decoded settings against the values the logger, the
//              formatter and the array factory accept.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-14 v0.2.0: Rule-based validation replaced by typed checks

package config

import (
	"fmt"
	"strings"

	coreerr "github.com/msto63/tod/foundation/core/error"
	"github.com/msto63/tod/foundation/core/log"
	"github.com/msto63/tod/foundation/utils/timex"
)

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Check validates every section and collects all problems.
func (c *Config) Check() *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}

	add := func(key, format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, key+": "+fmt.Sprintf(format, args...))
	}

	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		add("general.log_level", "unknown level %q", c.General.LogLevel)
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		add("general.log_format", "unknown format %q", c.General.LogFormat)
	}
	if !timex.ValidFormat(c.Output.Format) {
		add("output.format", "unknown format %q", c.Output.Format)
	}

	if c.Range.Step < 1 {
		add("range.step", "must be at least 1, got %d", c.Range.Step)
	}
	if c.Range.Unit != nil && !c.Range.Unit.Valid() {
		add("range.unit", "unknown unit %d", int(*c.Range.Unit))
	}
	if start, end := c.Range.StartTime(), c.Range.EndTime(); start.After(end) {
		add("range.start", "%s is after range.end %s", start, end)
	}

	return result
}

// Validate returns nil for a valid configuration, otherwise a single error
// carrying all problems in its "problems" detail.
func (c *Config) Validate() error {
	result := c.Check()
	if result.Valid {
		return nil
	}
	return coreerr.New("invalid configuration: "+strings.Join(result.Errors, "; ")).
		WithCode(coreerr.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("problems", result.Errors)
}
