// Package log provides structured logging for the tod command line tools.
//
// Package: log
// Title: tod Structured Logging
// Description: Leveled logger with persistent context fields, pluggable
//              formatters (json, text, console, logfmt) and timers for
//              measuring named operations. Library packages such as timex do
//              not log; the CLI owns a Logger and reports through it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-14 v0.2.0: Dropped async mode and audit level, deterministic field
//                       order in text and logfmt output
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatLogfmt,
//		Output: os.Stderr,
//		Name:   "tod",
//	}).WithCorrelationID(id)
//
//	timer := logger.StartTimer("build_array")
//	values, err := timex.BuildArray(start, end, timex.Minutes, true)
//	if err != nil {
//		timer.StopWithError(err)
//		return err
//	}
//	timer.WithField("count", len(values)).Stop()
package log
