// Package timex implements a wall-clock time-of-day value and generators for
// evenly spaced sequences of such values.
//
// Package: timex
// Title: Time-of-Day Utilities for Go
// Description: TimeOfDay holds hours, minutes and seconds within a single
//              24-hour day. Values are validated on construction and never
//              observably invalid. The package provides ordering, parsing,
//              formatting, unit stepping with day-wrap reporting, and the
//              BuildArray family for generating time slots between two bounds.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with time.Time helpers
// - 2026-10-14 v0.2.0: Rebuilt around the TimeOfDay value type, unit stepping
//                       and the array factory; date and timezone helpers removed
//
// # The TimeOfDay value
//
// A TimeOfDay is a small comparable struct. The zero value is midnight (Min),
// so it can be declared without initialization, compared with == and used as
// a map key. Construction goes through New, Parse or FromTime:
//
//	nine, err := timex.New(9, 0, 0)
//	lunch, err := timex.Parse("12:30")
//	now := timex.FromTime(time.Now())
//
// There are no setters. WithHours, WithMinutes and WithSeconds return a new
// value, or an error and the zero value when the field is out of range.
//
// # Ordering
//
// Values are totally ordered by hours, then minutes, then seconds. Compare
// returns -1, 0 or +1 and is suitable for slices.SortFunc; Before, After,
// BeforeOrEqual, AfterOrEqual and Equal are the operator forms. Milliseconds
// returns the canonical scalar ((h*60+m)*60+s)*1000, which is monotonic with
// Compare and ranges over [0, 86399000].
//
// # Text forms
//
// String returns "HH:MM:SS", ShortString returns "HH:MM", and Format selects
// between the two by name ("short"/"t" or "long"/"default"/"T"; unknown names
// fall back to the long form). Parse accepts "HH:MM" and "HH:MM:SS". Empty
// segments are dropped before counting, and when more than three segments are
// present the third one is used for seconds. TryParse returns Min and false
// instead of an error.
//
// # Stepping
//
// Next and Previous move a value by one Unit and report whether the step
// crossed midnight:
//
//	t, wrapped := timex.Max.Next(timex.Seconds) // 00:00:00, true
//	t, wrapped = timex.Min.Previous(timex.Hours) // 23:00:00, true
//
// Stepping by Hours only touches the hour field. Stepping by Minutes carries
// into hours on overflow, and stepping by Seconds carries into minutes and
// then hours. The day-wrap flag is set only when the hour field itself wraps.
//
// # Array factory
//
// BuildArray walks from start towards end one unit at a time and collects the
// strictly interior values, stopping at end or at midnight. With
// includeExtremes the bounds are added; for hour granularity a trailing value
// in the same hour as end is replaced by end. BuildArrayBySteps keeps only
// every step-th value:
//
//	hours, _ := timex.BuildArray(timex.Min, timex.Max, timex.Hours, true)            // 24 values
//	slots, _ := timex.BuildArrayBySteps(timex.Min, timex.Max, 30, timex.Minutes, true) // 49 values
//
// # Errors
//
// Out-of-range fields and start > end produce errors matching ErrOutOfRange;
// malformed text produces errors matching ErrInvalidFormat. Both are
// *error.Error values from foundation/core/error and carry the offending
// field, value and bounds as details.
//
// # Thread Safety
//
// All functions are pure and all values immutable, so everything in the
// package is safe for concurrent use.
package timex
