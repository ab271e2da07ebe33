// File: clock.go
// Title: Clock Abstraction
// Description: Source of the current time, swappable for deterministic tests.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import "time"

// Clock abstracts time.Now().
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Time
}

// Now returns the current time of day according to clock. A nil clock uses
// the system clock.
func Now(clock Clock) TimeOfDay {
	if clock == nil {
		clock = RealClock{}
	}
	return FromTime(clock.Now())
}
