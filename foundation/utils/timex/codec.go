// File: codec.go
// Title: TimeOfDay Encoding
// Description: Text, JSON and database/sql codecs. The long form "HH:MM:SS"
//              is the wire representation; decoding accepts anything Parse
//              accepts.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

import (
	"database/sql/driver"
	"time"

	coreerr "github.com/msto63/tod/foundation/core/error"
)

// MarshalText implements encoding.TextMarshaler. JSON, TOML and YAML encoders
// use it, so a TimeOfDay is serialized as "HH:MM:SS".
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. t is left unchanged
// when text is invalid.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer for TIME columns.
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan implements sql.Scanner. It accepts TIME columns delivered as
// time.Time, string or []byte. NULL scans as Min.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = FromTime(v)
		return nil
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	case nil:
		*t = Min
		return nil
	default:
		return coreerr.Newf("cannot scan %T into TimeOfDay", src).
			WithCode(coreerr.CodeInvalidInput).
			WithOperation("timex.TimeOfDay.Scan")
	}
}
