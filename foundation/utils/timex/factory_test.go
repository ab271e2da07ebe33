// File: factory_test.go
// Title: Time Array Factory Tests
// Description: Tests for BuildArray and BuildArrayBySteps covering bounds,
//              extremes handling, step filtering and ordering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial test implementation

package timex

import (
	"testing"
)

func assertSorted(t *testing.T, ts []TimeOfDay) {
	t.Helper()
	for i := 1; i < len(ts); i++ {
		if !ts[i-1].Before(ts[i]) {
			t.Fatalf("not strictly increasing at %d: %v, %v", i, ts[i-1], ts[i])
		}
	}
}

func assertEqualSlices(t *testing.T, got, want []TimeOfDay) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// ===============================
// BuildArray Tests
// ===============================

func TestBuildArrayFullDayHours(t *testing.T) {
	got, err := BuildArray(Min, Max, Hours, true)
	if err != nil {
		t.Fatalf("BuildArray() unexpected error: %v", err)
	}
	if len(got) != 24 {
		t.Fatalf("len = %d, want 24", len(got))
	}
	if got[0] != Min {
		t.Errorf("[0] = %v, want Min", got[0])
	}
	if got[1] != MustParse("01:00") {
		t.Errorf("[1] = %v, want 01:00:00", got[1])
	}
	if got[22] != MustParse("22:00") {
		t.Errorf("[22] = %v, want 22:00:00", got[22])
	}
	if got[23] != Max {
		t.Errorf("[23] = %v, want Max", got[23])
	}
	assertSorted(t, got)
}

func TestBuildArrayFullDaySeconds(t *testing.T) {
	got, err := BuildArray(Min, Max, Seconds, true)
	if err != nil {
		t.Fatalf("BuildArray() unexpected error: %v", err)
	}
	if len(got) != 86_400 {
		t.Fatalf("len = %d, want 86400", len(got))
	}
	if got[0] != Min || got[len(got)-1] != Max {
		t.Errorf("extremes = %v, %v", got[0], got[len(got)-1])
	}
	assertSorted(t, got)
}

func TestBuildArray(t *testing.T) {
	testCases := []struct {
		name            string
		start, end      TimeOfDay
		unit            Unit
		includeExtremes bool
		want            []TimeOfDay
	}{
		{"Equal bounds with extremes", Min, Min, Seconds, true, []TimeOfDay{Min}},
		{"Equal bounds without extremes", Min, Min, Seconds, false, []TimeOfDay{}},
		{"Interior minute", Min, MustParse("00:02"), Minutes, false, []TimeOfDay{MustParse("00:01")}},
		{"Minutes with extremes", Min, MustParse("00:02"), Minutes, true,
			[]TimeOfDay{Min, MustParse("00:01"), MustParse("00:02")}},
		{"End not on grid", MustParse("10:00"), MustParse("10:02:30"), Minutes, true,
			[]TimeOfDay{MustParse("10:00"), MustParse("10:01"), MustParse("10:02"), MustParse("10:02:30")}},
		{"Seconds interior", MustParse("10:00:58"), MustParse("10:01:01"), Seconds, false,
			[]TimeOfDay{MustParse("10:00:59"), MustParse("10:01:00")}},
		{"Hours drop same hour as end", MustParse("08:00"), MustParse("10:30"), Hours, true,
			[]TimeOfDay{MustParse("08:00"), MustParse("09:00"), MustParse("10:30")}},
		{"Hours keep start in same hour as end", MustParse("08:00"), MustParse("08:30"), Hours, true,
			[]TimeOfDay{MustParse("08:00"), MustParse("08:30")}},
		{"Hours end on grid", MustParse("08:00"), MustParse("10:00"), Hours, true,
			[]TimeOfDay{MustParse("08:00"), MustParse("09:00"), MustParse("10:00")}},
		{"Hours without extremes", MustParse("08:00"), MustParse("10:30"), Hours, false,
			[]TimeOfDay{MustParse("09:00"), MustParse("10:00")}},
		{"Unknown unit builds hours", MustParse("08:00"), MustParse("10:00"), Unit(7), false,
			[]TimeOfDay{MustParse("09:00")}},
		{"Stops at end of day", MustParse("22:30"), Max, Hours, false,
			[]TimeOfDay{MustParse("23:30")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BuildArray(tc.start, tc.end, tc.unit, tc.includeExtremes)
			if err != nil {
				t.Fatalf("BuildArray() unexpected error: %v", err)
			}
			if got == nil {
				t.Fatal("BuildArray() returned nil slice on success")
			}
			assertEqualSlices(t, got, tc.want)
			assertSorted(t, got)
		})
	}
}

func TestBuildArrayStartAfterEnd(t *testing.T) {
	got, err := BuildArray(Max, Min, Hours, true)
	if err == nil {
		t.Fatalf("BuildArray(Max, Min) expected error, got %v", got)
	}
	if !IsRangeError(err) {
		t.Errorf("BuildArray(Max, Min) error %v is not a range error", err)
	}
	if got != nil {
		t.Errorf("BuildArray(Max, Min) = %v, want nil", got)
	}
}

func TestBuildArrayBounds(t *testing.T) {
	start, end := MustParse("06:10:20"), MustParse("09:45:05")
	for _, unit := range []Unit{Hours, Minutes, Seconds} {
		for _, includeExtremes := range []bool{true, false} {
			got, err := BuildArray(start, end, unit, includeExtremes)
			if err != nil {
				t.Fatalf("BuildArray(%v, %v) unexpected error: %v", unit, includeExtremes, err)
			}
			assertSorted(t, got)
			for _, v := range got {
				if v.Before(start) || v.After(end) {
					t.Errorf("%v outside [%v, %v]", v, start, end)
				}
				if !includeExtremes && (v == start || v == end) {
					t.Errorf("extreme %v present without includeExtremes", v)
				}
			}
			if includeExtremes && (got[0] != start || got[len(got)-1] != end) {
				t.Errorf("extremes missing for %v: %v .. %v", unit, got[0], got[len(got)-1])
			}
		}
	}
}

// ===============================
// BuildArrayBySteps Tests
// ===============================

func TestBuildArrayBySteps(t *testing.T) {
	testCases := []struct {
		name            string
		start, end      TimeOfDay
		step            int
		unit            Unit
		includeExtremes bool
		wantLen         int
		wantFirst       TimeOfDay
		wantLast        TimeOfDay
	}{
		{"Half hours over a day", Min, Max, 30, Minutes, true, 49, Min, Max},
		{"Single interior half hour", Min, MustParse("00:45"), 30, Minutes, false, 1, MustParse("00:30"), MustParse("00:30")},
		{"Eleven seconds", Min, MustParse("00:00:10"), 1, Seconds, true, 11, Min, MustParse("00:00:10")},
		{"Quarter hours", MustParse("09:00"), MustParse("10:00"), 15, Minutes, true, 5, MustParse("09:00"), MustParse("10:00")},
		{"Every ten seconds", Min, MustParse("00:01"), 10, Seconds, false, 5, MustParse("00:00:10"), MustParse("00:00:50")},
		{"Step larger than range", Min, MustParse("00:10"), 30, Minutes, true, 2, Min, MustParse("00:10")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BuildArrayBySteps(tc.start, tc.end, tc.step, tc.unit, tc.includeExtremes)
			if err != nil {
				t.Fatalf("BuildArrayBySteps() unexpected error: %v", err)
			}
			if len(got) != tc.wantLen {
				t.Fatalf("len = %d, want %d (%v)", len(got), tc.wantLen, got)
			}
			if got[0] != tc.wantFirst || got[len(got)-1] != tc.wantLast {
				t.Errorf("first, last = %v, %v; want %v, %v", got[0], got[len(got)-1], tc.wantFirst, tc.wantLast)
			}
			assertSorted(t, got)
		})
	}
}

func TestBuildArrayByStepsMatchesBuildArray(t *testing.T) {
	for _, unit := range []Unit{Hours, Minutes} {
		for _, includeExtremes := range []bool{true, false} {
			want, err := BuildArray(Min, Max, unit, includeExtremes)
			if err != nil {
				t.Fatalf("BuildArray() unexpected error: %v", err)
			}
			got, err := BuildArrayBySteps(Min, Max, 1, unit, includeExtremes)
			if err != nil {
				t.Fatalf("BuildArrayBySteps() unexpected error: %v", err)
			}
			assertEqualSlices(t, got, want)
		}
	}
}

func TestBuildArrayByStepsErrors(t *testing.T) {
	for _, step := range []int{0, -1} {
		got, err := BuildArrayBySteps(Min, Max, step, Minutes, true)
		if !IsRangeError(err) {
			t.Errorf("step %d: expected range error, got %v", step, err)
		}
		if got != nil {
			t.Errorf("step %d: got %v, want nil", step, got)
		}
	}

	if _, err := BuildArrayBySteps(Max, Min, 5, Minutes, true); !IsRangeError(err) {
		t.Errorf("start after end: expected range error, got %v", err)
	}
}
