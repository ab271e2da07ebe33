// File: unit.go
// Title: Time Units
// Description: The Unit enumeration selecting which field stepping and array
//              generation operate on.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"strings"

	coreerr "github.com/msto63/tod/foundation/core/error"
)

// Unit selects the field a step operates on.
type Unit int

const (
	Hours Unit = iota
	Minutes
	Seconds
)

// Default units of the array factory
const (
	DefaultArrayUnit = Hours
	DefaultStepUnit  = Minutes
)

// String returns the lower-case plural name of the unit
func (u Unit) String() string {
	switch u {
	case Hours:
		return "hours"
	case Minutes:
		return "minutes"
	case Seconds:
		return "seconds"
	default:
		return "unknown"
	}
}

// Valid reports whether u is one of Hours, Minutes or Seconds.
func (u Unit) Valid() bool {
	return u >= Hours && u <= Seconds
}

// ParseUnit accepts the unit names in singular, plural or abbreviated form.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hour", "hours":
		return Hours, nil
	case "m", "min", "minute", "minutes":
		return Minutes, nil
	case "s", "sec", "second", "seconds":
		return Seconds, nil
	default:
		return Hours, coreerr.Newf("unknown time unit %q", s).
			WithCode(coreerr.CodeInvalidInput).
			WithOperation("timex.ParseUnit").
			WithDetail("input", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (u Unit) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, coreerr.Newf("unknown time unit %d", int(u)).
			WithCode(coreerr.CodeInvalidInput).
			WithOperation("timex.Unit.MarshalText")
	}
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
