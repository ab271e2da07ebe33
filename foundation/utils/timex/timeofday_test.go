// File: timeofday_test.go
// Title: TimeOfDay Value Tests
// Description: Tests for construction, validation, functional setters,
//              ordering and the milliseconds scalar.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package timex

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	coreerr "github.com/msto63/tod/foundation/core/error"
)

// ===============================
// Construction Tests
// ===============================

func TestNew(t *testing.T) {
	testCases := []struct {
		name      string
		h, m, s   int
		wantErr   bool
		wantField string
	}{
		{"Midnight", 0, 0, 0, false, ""},
		{"Last second", 23, 59, 59, false, ""},
		{"Afternoon", 14, 30, 15, false, ""},
		{"Hour too large", 24, 0, 0, true, "hours"},
		{"Negative hour", -1, 0, 0, true, "hours"},
		{"Minute too large", 10, 60, 0, true, "minutes"},
		{"Second too large", 10, 0, 60, true, "seconds"},
		{"First bad field reported", 44, 13, 99, true, "hours"},
		{"Minutes before seconds", 1, 99, 99, true, "minutes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.h, tc.m, tc.s)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("New(%d, %d, %d) expected error, got %v", tc.h, tc.m, tc.s, got)
				}
				if !IsRangeError(err) {
					t.Errorf("New(%d, %d, %d) error %v is not a range error", tc.h, tc.m, tc.s, err)
				}
				var ce *coreerr.Error
				if !errors.As(err, &ce) {
					t.Fatalf("error is not *coreerr.Error: %T", err)
				}
				field, _ := ce.Detail("field")
				if field != tc.wantField {
					t.Errorf("field detail = %v, want %s", field, tc.wantField)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d, %d, %d) unexpected error: %v", tc.h, tc.m, tc.s, err)
			}
			if got.Hours() != tc.h || got.Minutes() != tc.m || got.Seconds() != tc.s {
				t.Errorf("New(%d, %d, %d) = %v", tc.h, tc.m, tc.s, got)
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew(24, 0, 0) did not panic")
		}
	}()
	MustNew(24, 0, 0)
}

func TestMinMax(t *testing.T) {
	var zero TimeOfDay
	if zero != Min {
		t.Errorf("zero value = %v, want Min", zero)
	}
	if Min.String() != "00:00:00" {
		t.Errorf("Min = %s", Min)
	}
	if Max.String() != "23:59:59" {
		t.Errorf("Max = %s", Max)
	}
	if !Min.Before(Max) {
		t.Error("Min should be before Max")
	}
}

func TestFromTime(t *testing.T) {
	in := time.Date(2023, 12, 25, 15, 30, 45, 999_000_000, time.UTC)
	if got := FromTime(in); got != MustNew(15, 30, 45) {
		t.Errorf("FromTime(%v) = %v", in, got)
	}
}

// ===============================
// Setter Tests
// ===============================

func TestWithSetters(t *testing.T) {
	base := MustNew(10, 20, 30)

	got, err := base.WithHours(5)
	if err != nil || got != MustNew(5, 20, 30) {
		t.Errorf("WithHours(5) = %v, %v", got, err)
	}
	got, err = base.WithMinutes(0)
	if err != nil || got != MustNew(10, 0, 30) {
		t.Errorf("WithMinutes(0) = %v, %v", got, err)
	}
	got, err = base.WithSeconds(59)
	if err != nil || got != MustNew(10, 20, 59) {
		t.Errorf("WithSeconds(59) = %v, %v", got, err)
	}

	if base != MustNew(10, 20, 30) {
		t.Errorf("receiver was modified: %v", base)
	}

	for name, fn := range map[string]func() (TimeOfDay, error){
		"hours":   func() (TimeOfDay, error) { return base.WithHours(24) },
		"minutes": func() (TimeOfDay, error) { return base.WithMinutes(-1) },
		"seconds": func() (TimeOfDay, error) { return base.WithSeconds(60) },
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := fn(); !IsRangeError(err) {
				t.Errorf("expected range error, got %v", err)
			}
		})
	}
}

// ===============================
// Comparison Tests
// ===============================

func TestCompare(t *testing.T) {
	testCases := []struct {
		a, b TimeOfDay
		want int
	}{
		{Min, Min, 0},
		{Min, Max, -1},
		{Max, Min, 1},
		{MustNew(10, 0, 0), MustNew(9, 59, 59), 1},
		{MustNew(10, 5, 0), MustNew(10, 4, 59), 1},
		{MustNew(10, 5, 1), MustNew(10, 5, 2), -1},
	}

	for _, tc := range testCases {
		t.Run(tc.a.String()+"_"+tc.b.String(), func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
			if got := tc.a.Compare(tc.b); got != tc.want {
				t.Errorf("%v.Compare(%v) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
			if tc.a.Before(tc.b) != (tc.want < 0) {
				t.Errorf("Before mismatch for %v, %v", tc.a, tc.b)
			}
			if tc.a.After(tc.b) != (tc.want > 0) {
				t.Errorf("After mismatch for %v, %v", tc.a, tc.b)
			}
			if tc.a.BeforeOrEqual(tc.b) != (tc.want <= 0) {
				t.Errorf("BeforeOrEqual mismatch for %v, %v", tc.a, tc.b)
			}
			if tc.a.AfterOrEqual(tc.b) != (tc.want >= 0) {
				t.Errorf("AfterOrEqual mismatch for %v, %v", tc.a, tc.b)
			}
			if tc.a.Equal(tc.b) != (tc.want == 0) {
				t.Errorf("Equal mismatch for %v, %v", tc.a, tc.b)
			}
		})
	}
}

func TestCompareAgreesWithMilliseconds(t *testing.T) {
	samples := []TimeOfDay{Min, Max, MustNew(0, 0, 1), MustNew(0, 1, 0), MustNew(1, 0, 0), MustNew(12, 34, 56)}
	for _, a := range samples {
		for _, b := range samples {
			want := sign(a.Milliseconds() - b.Milliseconds())
			if got := Compare(a, b); got != want {
				t.Errorf("Compare(%v, %v) = %d, milliseconds say %d", a, b, got, want)
			}
		}
	}
}

func TestSort(t *testing.T) {
	want := []TimeOfDay{Min, MustNew(0, 0, 1), MustNew(0, 1, 0), MustNew(1, 0, 0), MustNew(12, 0, 0), Max}

	shuffled := append([]TimeOfDay(nil), want...)
	r := rand.New(rand.NewSource(42))
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	Sort(shuffled)
	for i := range want {
		if shuffled[i] != want[i] {
			t.Fatalf("Sort()[%d] = %v, want %v (%v)", i, shuffled[i], want[i], shuffled)
		}
	}

	SortDescending(shuffled)
	for i := range want {
		if shuffled[i] != want[len(want)-1-i] {
			t.Fatalf("SortDescending()[%d] = %v, want %v", i, shuffled[i], want[len(want)-1-i])
		}
	}
}

func TestMapKey(t *testing.T) {
	seen := map[TimeOfDay]int{}
	seen[MustNew(8, 0, 0)]++
	seen[MustParse("08:00")]++
	if len(seen) != 1 || seen[MustNew(8, 0, 0)] != 2 {
		t.Errorf("equal values should share a map key: %v", seen)
	}
}

// ===============================
// Milliseconds Tests
// ===============================

func TestMilliseconds(t *testing.T) {
	testCases := []struct {
		in   TimeOfDay
		want int
	}{
		{Min, 0},
		{MustNew(0, 0, 1), 1000},
		{MustNew(0, 1, 0), 60_000},
		{MustNew(1, 0, 0), 3_600_000},
		{Max, MaxMilliseconds},
	}

	for _, tc := range testCases {
		t.Run(tc.in.String(), func(t *testing.T) {
			if got := tc.in.Milliseconds(); got != tc.want {
				t.Errorf("Milliseconds() = %d, want %d", got, tc.want)
			}
			if got := tc.in.SinceMidnight(); got != time.Duration(tc.want)*time.Millisecond {
				t.Errorf("SinceMidnight() = %v", got)
			}
			back, err := FromMilliseconds(tc.want)
			if err != nil || back != tc.in {
				t.Errorf("FromMilliseconds(%d) = %v, %v", tc.want, back, err)
			}
		})
	}

	if MaxMilliseconds != 86_399_000 {
		t.Errorf("MaxMilliseconds = %d", MaxMilliseconds)
	}
}

func TestFromMilliseconds(t *testing.T) {
	got, err := FromMilliseconds(61_999)
	if err != nil || got != MustNew(0, 1, 1) {
		t.Errorf("FromMilliseconds(61999) = %v, %v", got, err)
	}
	for _, ms := range []int{-1, MaxMilliseconds + 1000} {
		if _, err := FromMilliseconds(ms); !IsRangeError(err) {
			t.Errorf("FromMilliseconds(%d) expected range error, got %v", ms, err)
		}
	}
}
