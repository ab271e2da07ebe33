// File: factory.go
// Title: Time Array Factory
// Description: Generates ordered sequences of TimeOfDay values between two
//              bounds, one unit at a time or every n-th unit.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	coreerr "github.com/msto63/tod/foundation/core/error"
)

// BuildArray returns the values reached from start by repeatedly stepping one
// unit, as long as they are strictly before end and on the same day.
//
// With includeExtremes, start is the first element and end the last; end is
// not repeated if it is already present. For Hours, a trailing value that
// shares its hour with end is dropped before end is appended, so
// BuildArray(Min, Max, Hours, true) ends in 22:00:00, 23:59:59. start itself
// is never dropped. Without
// includeExtremes only the interior values are returned.
//
// start after end is an error matching ErrOutOfRange. Units other than
// Minutes and Seconds build by hours.
func BuildArray(start, end TimeOfDay, unit Unit, includeExtremes bool) ([]TimeOfDay, error) {
	return buildArray("timex.BuildArray", start, end, 1, unit, includeExtremes)
}

// BuildArrayBySteps is BuildArray keeping only every step-th stepped value:
// the first value kept is step units after start. step must be at least 1;
// a step of 1 gives the same result as BuildArray.
func BuildArrayBySteps(start, end TimeOfDay, step int, unit Unit, includeExtremes bool) ([]TimeOfDay, error) {
	const op = "timex.BuildArrayBySteps"

	if step < 1 {
		return nil, coreerr.Newf("step must be at least 1, got %d", step).
			WithCode(coreerr.CodeValueOutOfRange).
			WithOperation(op).
			WithDetails(map[string]interface{}{"field": "step", "value": step, "min": 1})
	}
	return buildArray(op, start, end, step, unit, includeExtremes)
}

func buildArray(op string, start, end TimeOfDay, step int, unit Unit, includeExtremes bool) ([]TimeOfDay, error) {
	if start.After(end) {
		return nil, coreerr.Newf("start %s must not be after end %s", start, end).
			WithCode(coreerr.CodeValueOutOfRange).
			WithOperation(op).
			WithDetail("start", start.String()).
			WithDetail("end", end.String())
	}
	if !unit.Valid() {
		unit = DefaultArrayUnit
	}

	result := make([]TimeOfDay, 0, estimateLen(start, end, step, unit)+2)
	if includeExtremes {
		result = append(result, start)
	}

	counter := 0
	x, nextDay := start.Next(unit)
	for x.Before(end) && !nextDay {
		counter++
		if counter == step {
			result = append(result, x)
			counter = 0
		}
		x, nextDay = x.Next(unit)
	}

	if includeExtremes && !contains(result, end) {
		if n := len(result); unit == Hours && n > 1 && result[n-1].hours == end.hours {
			result = result[:n-1]
		}
		result = append(result, end)
	}

	return result, nil
}

func contains(ts []TimeOfDay, t TimeOfDay) bool {
	for _, v := range ts {
		if v == t {
			return true
		}
	}
	return false
}

// estimateLen is an upper bound for the number of interior values.
func estimateLen(start, end TimeOfDay, step int, unit Unit) int {
	span := (end.Milliseconds() - start.Milliseconds()) / 1000
	switch unit {
	case Hours:
		span /= 3600
	case Minutes:
		span /= 60
	}
	return span/step + 1
}
