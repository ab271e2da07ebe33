// File: format.go
// Title: TimeOfDay Formatting
// Description: Long ("HH:MM:SS") and short ("HH:MM") text forms and the named
//              format selector.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"fmt"
	"strings"
)

// Format names accepted by TimeOfDay.Format
const (
	FormatShort   = "short"
	FormatLong    = "long"
	FormatDefault = "default"
)

// String returns the long form "HH:MM:SS".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hours, t.minutes, t.seconds)
}

// ShortString returns the short form "HH:MM".
func (t TimeOfDay) ShortString() string {
	return fmt.Sprintf("%02d:%02d", t.hours, t.minutes)
}

// Format renders t using a named format. "short" and "t" select HH:MM;
// "long", "default", "T" and anything unrecognized select HH:MM:SS.
func (t TimeOfDay) Format(format string) string {
	if IsShortFormat(format) {
		return t.ShortString()
	}
	return t.String()
}

// IsShortFormat reports whether format names the short form.
func IsShortFormat(format string) bool {
	if format == "t" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(format), FormatShort)
}

// ValidFormat reports whether format is one of the recognized names.
func ValidFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatShort, FormatLong, FormatDefault, "":
		return true
	}
	return format == "t" || format == "T"
}
