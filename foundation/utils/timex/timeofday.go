// File: timeofday.go
// Title: TimeOfDay Value Type
// Description: The validated hours/minutes/seconds value, its constructors,
//              functional setters, ordering and canonical scalar form.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"slices"
	"time"
)

// Field bounds
const (
	MaxHours   = 23
	MaxMinutes = 59
	MaxSeconds = 59

	// MaxMilliseconds is the canonical scalar of Max.
	MaxMilliseconds = ((MaxHours*60+MaxMinutes)*60 + MaxSeconds) * 1000
)

// TimeOfDay is a wall-clock reading within one day, at second precision.
// The zero value is 00:00:00.
type TimeOfDay struct {
	hours   int
	minutes int
	seconds int
}

var (
	// Min is the earliest time of day, 00:00:00.
	Min = TimeOfDay{}

	// Max is the latest time of day, 23:59:59.
	Max = TimeOfDay{hours: MaxHours, minutes: MaxMinutes, seconds: MaxSeconds}
)

// New returns the time of day h:m:s. Fields are checked in the order hours,
// minutes, seconds and the first one out of range is reported.
func New(hours, minutes, seconds int) (TimeOfDay, error) {
	return newTimeOfDay("timex.New", hours, minutes, seconds)
}

// MustNew is like New but panics on invalid input. Intended for constants.
func MustNew(hours, minutes, seconds int) TimeOfDay {
	t, err := New(hours, minutes, seconds)
	if err != nil {
		panic(err)
	}
	return t
}

func newTimeOfDay(op string, hours, minutes, seconds int) (TimeOfDay, error) {
	if err := checkField(op, "hours", hours, MaxHours); err != nil {
		return TimeOfDay{}, err
	}
	if err := checkField(op, "minutes", minutes, MaxMinutes); err != nil {
		return TimeOfDay{}, err
	}
	if err := checkField(op, "seconds", seconds, MaxSeconds); err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{hours: hours, minutes: minutes, seconds: seconds}, nil
}

func checkField(op, field string, value, max int) error {
	if value < 0 || value > max {
		return fieldRangeError(op, field, value, max)
	}
	return nil
}

// FromTime extracts the wall-clock hour, minute and second of t in t's own
// location. The date and sub-second part are discarded.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{hours: t.Hour(), minutes: t.Minute(), seconds: t.Second()}
}

// FromMilliseconds is the inverse of Milliseconds. The sub-second remainder
// is truncated; values outside [0, MaxMilliseconds+999] are rejected.
func FromMilliseconds(ms int) (TimeOfDay, error) {
	if ms < 0 || ms > MaxMilliseconds+999 {
		return TimeOfDay{}, fieldRangeError("timex.FromMilliseconds", "milliseconds", ms, MaxMilliseconds+999)
	}
	secs := ms / 1000
	return TimeOfDay{hours: secs / 3600, minutes: secs / 60 % 60, seconds: secs % 60}, nil
}

// Hours returns the hour field in [0, 23].
func (t TimeOfDay) Hours() int { return t.hours }

// Minutes returns the minute field in [0, 59].
func (t TimeOfDay) Minutes() int { return t.minutes }

// Seconds returns the second field in [0, 59].
func (t TimeOfDay) Seconds() int { return t.seconds }

// WithHours returns t with the hour field replaced.
func (t TimeOfDay) WithHours(hours int) (TimeOfDay, error) {
	if err := checkField("timex.WithHours", "hours", hours, MaxHours); err != nil {
		return TimeOfDay{}, err
	}
	t.hours = hours
	return t, nil
}

// WithMinutes returns t with the minute field replaced.
func (t TimeOfDay) WithMinutes(minutes int) (TimeOfDay, error) {
	if err := checkField("timex.WithMinutes", "minutes", minutes, MaxMinutes); err != nil {
		return TimeOfDay{}, err
	}
	t.minutes = minutes
	return t, nil
}

// WithSeconds returns t with the second field replaced.
func (t TimeOfDay) WithSeconds(seconds int) (TimeOfDay, error) {
	if err := checkField("timex.WithSeconds", "seconds", seconds, MaxSeconds); err != nil {
		return TimeOfDay{}, err
	}
	t.seconds = seconds
	return t, nil
}

// Compare returns -1 if a is before b, +1 if a is after b and 0 if equal.
func Compare(a, b TimeOfDay) int {
	switch {
	case a.hours != b.hours:
		return sign(a.hours - b.hours)
	case a.minutes != b.minutes:
		return sign(a.minutes - b.minutes)
	default:
		return sign(a.seconds - b.seconds)
	}
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

// Compare compares t with u, see the package-level Compare.
func (t TimeOfDay) Compare(u TimeOfDay) int { return Compare(t, u) }

// Equal reports whether t and u hold the same fields.
func (t TimeOfDay) Equal(u TimeOfDay) bool { return t == u }

// Before reports whether t is strictly earlier than u.
func (t TimeOfDay) Before(u TimeOfDay) bool { return Compare(t, u) == -1 }

// After reports whether t is strictly later than u.
func (t TimeOfDay) After(u TimeOfDay) bool { return Compare(t, u) == 1 }

// BeforeOrEqual reports whether t is earlier than or equal to u.
func (t TimeOfDay) BeforeOrEqual(u TimeOfDay) bool { return Compare(t, u) < 1 }

// AfterOrEqual reports whether t is later than or equal to u.
func (t TimeOfDay) AfterOrEqual(u TimeOfDay) bool { return Compare(t, u) >= 0 }

// Milliseconds returns the number of milliseconds since 00:00:00. It is the
// hash and ordering key of the value.
func (t TimeOfDay) Milliseconds() int {
	return t.hours*3600000 + t.minutes*60000 + t.seconds*1000
}

// Hash returns a hash key consistent with Equal. It is Milliseconds.
func (t TimeOfDay) Hash() int {
	return t.Milliseconds()
}

// SinceMidnight returns the offset of t from 00:00:00.
func (t TimeOfDay) SinceMidnight() time.Duration {
	return time.Duration(t.Milliseconds()) * time.Millisecond
}

// Sort orders ts ascending in place.
func Sort(ts []TimeOfDay) {
	slices.SortFunc(ts, Compare)
}

// SortDescending orders ts descending in place.
func SortDescending(ts []TimeOfDay) {
	slices.SortFunc(ts, func(a, b TimeOfDay) int { return Compare(b, a) })
}
