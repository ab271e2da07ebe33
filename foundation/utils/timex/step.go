// File: step.go
// Title: Unit Stepping
// Description: Successor and predecessor of a TimeOfDay by one hour, minute or
//              second, reporting when the step crosses midnight.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package timex

// Next returns t advanced by one unit and whether the hour field wrapped past
// 23, i.e. the result lies on the next day. Unknown units step by seconds.
func (t TimeOfDay) Next(unit Unit) (TimeOfDay, bool) {
	switch unit {
	case Hours:
		return t.nextHour()
	case Minutes:
		return t.nextMinute()
	default:
		return t.nextSecond()
	}
}

// Previous returns t moved back by one unit and whether the hour field
// wrapped below 0, i.e. the result lies on the previous day. Unknown units
// step by seconds.
func (t TimeOfDay) Previous(unit Unit) (TimeOfDay, bool) {
	switch unit {
	case Hours:
		return t.previousHour()
	case Minutes:
		return t.previousMinute()
	default:
		return t.previousSecond()
	}
}

func (t TimeOfDay) nextHour() (TimeOfDay, bool) {
	if t.hours < MaxHours {
		t.hours++
		return t, false
	}
	t.hours = 0
	return t, true
}

func (t TimeOfDay) nextMinute() (TimeOfDay, bool) {
	if t.minutes < MaxMinutes {
		t.minutes++
		return t, false
	}
	t.minutes = 0
	return t.nextHour()
}

func (t TimeOfDay) nextSecond() (TimeOfDay, bool) {
	if t.seconds < MaxSeconds {
		t.seconds++
		return t, false
	}
	t.seconds = 0
	return t.nextMinute()
}

func (t TimeOfDay) previousHour() (TimeOfDay, bool) {
	if t.hours > 0 {
		t.hours--
		return t, false
	}
	t.hours = MaxHours
	return t, true
}

func (t TimeOfDay) previousMinute() (TimeOfDay, bool) {
	if t.minutes > 0 {
		t.minutes--
		return t, false
	}
	t.minutes = MaxMinutes
	return t.previousHour()
}

func (t TimeOfDay) previousSecond() (TimeOfDay, bool) {
	if t.seconds > 0 {
		t.seconds--
		return t, false
	}
	t.seconds = MaxSeconds
	return t.previousMinute()
}
