// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads the tod tool settings from TOML or YAML
//              files with environment based discovery and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Typed sections for logging, output and ranges

/*
Package config loads the configuration of the tod command.

The format is chosen by file extension: .yaml and .yml are YAML, everything
else is TOML. A complete TOML file:

	[general]
	log_level = "info"     # trace, debug, info, warn, error
	log_format = "text"    # text, json, console, logfmt

	[output]
	format = "short"       # short or long
	pretty = true

	[range]
	start = "08:00"
	end = "18:00"
	unit = "minutes"       # hours, minutes, seconds
	step = 30
	include_extremes = true

Times must be quoted strings in both formats; they are decoded by
timex.TimeOfDay.UnmarshalText and accept anything timex.Parse accepts.

Load and LoadFromString apply defaults and validate. Validation errors carry
error code CodeInvalidConfig and list every problem in the "problems" detail:

	cfg, err := config.Load("tod.toml")
	if err != nil {
		return err
	}
	ts, err := timex.BuildArrayBySteps(cfg.Range.StartTime(), cfg.Range.EndTime(),
		cfg.Range.Step, cfg.Range.StepUnit(), cfg.Range.Extremes())

LoadFromEnv reads the file named by TOD_CONFIG or, when it is unset, the
first existing file in DefaultPaths. Without any file it returns Default().
*/
package config
