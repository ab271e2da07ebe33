// File: parse.go
// Title: TimeOfDay Parsing
// Description: Parses "HH:MM" and "HH:MM:SS" text into TimeOfDay values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"strconv"
	"strings"

	coreerr "github.com/msto63/tod/foundation/core/error"
)

// Parse reads a time of day from text. The text is split on ':' and empty
// segments are dropped. Two segments are hours and minutes (seconds = 0);
// with three or more segments the third is used for seconds and any further
// segments are not used. Every segment must be a decimal integer.
//
// A wrong segment count or a non-numeric segment produces an error matching
// ErrInvalidFormat; a field out of range produces one matching ErrOutOfRange.
func Parse(text string) (TimeOfDay, error) {
	const op = "timex.Parse"

	segments := strings.FieldsFunc(text, func(r rune) bool { return r == ':' })
	if len(segments) < 2 {
		return TimeOfDay{}, formatError(op, text, "expected HH:MM or HH:MM:SS").
			WithDetail("segments", len(segments))
	}

	var fields [3]int
	for i, segment := range segments {
		v, err := strconv.Atoi(strings.TrimSpace(segment))
		if err != nil {
			return TimeOfDay{}, coreerr.Wrap(err, "invalid time "+strconv.Quote(text)+": "+segmentName(i)+" is not a number").
				WithCode(coreerr.CodeInvalidFormat).
				WithOperation(op).
				WithDetail("input", text).
				WithDetail("field", segmentName(i))
		}
		if i < len(fields) {
			fields[i] = v
		}
	}

	return newTimeOfDay(op, fields[0], fields[1], fields[2])
}

func segmentName(i int) string {
	switch i {
	case 0:
		return "hours"
	case 1:
		return "minutes"
	case 2:
		return "seconds"
	default:
		return "segment " + strconv.Itoa(i+1)
	}
}

// TryParse is Parse without the error: on failure it returns Min and false.
func TryParse(text string) (TimeOfDay, bool) {
	t, err := Parse(text)
	if err != nil {
		return Min, false
	}
	return t, true
}

// MustParse is like Parse but panics on invalid input. Intended for constants.
func MustParse(text string) TimeOfDay {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}
