package wealthsheet

import (
	"testing"
	"time"
)

func TestParseFlexible(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want Date
		ok   bool
	}{
		{name: "iso", in: "2024-03-05", want: NewDate(2024, 3, 5), ok: true},
		{name: "iso single digit", in: "2024-3-5", want: NewDate(2024, 3, 5), ok: true},
		{name: "slash separators", in: "2024/03/05", want: NewDate(2024, 3, 5), ok: true},
		{name: "dot separators", in: "2024.03.05", want: NewDate(2024, 3, 5), ok: true},
		{name: "surrounding space", in: "  2024-03-05  ", want: NewDate(2024, 3, 5), ok: true},
		{name: "month 13 rejected", in: "2024-13-05", ok: false},
		{name: "day 32 rejected", in: "2024-01-32", ok: false},
		{name: "month year shorthand", in: "Jan-24", want: NewDate(2024, 1, 1), ok: true},
		{name: "month year long", in: "Sep 2023", want: NewDate(2023, 9, 1), ok: true},
		{name: "full month shorthand", in: "March-24", want: NewDate(2024, 3, 1), ok: true},
		{name: "long form", in: "Mar 5, 2024", want: NewDate(2024, 3, 5), ok: true},
		{name: "us slashes", in: "03/05/2024", want: NewDate(2024, 3, 5), ok: true},
		{name: "placeholder template", in: "yyyy-mm-dd", ok: false},
		{name: "placeholder uppercase", in: "DD/MM/YYYY", ok: false},
		{name: "empty", in: "", ok: false},
		{name: "garbage", in: "not a date", ok: false},
		{name: "plain number", in: "1234", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseFlexible(tc.in)
			if ok != tc.ok {
				t.Fatalf("ParseFlexible(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Errorf("ParseFlexible(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestLogicalToday(t *testing.T) {
	now := Today()

	if got := LogicalToday(now.Year()); got != now {
		t.Errorf("LogicalToday(current year) = %s, want %s", got, now)
	}

	got := LogicalToday(2021)
	want := NewDate(2021, time.December, 31)
	if got != want {
		t.Errorf("LogicalToday(2021) = %s, want %s", got, want)
	}
}

func TestMonthsBetween(t *testing.T) {
	testCases := []struct {
		name string
		a, b Date
		want int
	}{
		{"same month", NewDate(2024, 3, 1), NewDate(2024, 3, 31), 0},
		{"adjacent", NewDate(2024, 3, 31), NewDate(2024, 4, 1), 1},
		{"across year", NewDate(2023, 11, 15), NewDate(2024, 2, 15), 3},
		{"negative", NewDate(2024, 4, 1), NewDate(2024, 3, 31), -1},
		{"full year", NewDate(2023, 1, 1), NewDate(2024, 1, 1), 12},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthsBetween(tc.a, tc.b); got != tc.want {
				t.Errorf("MonthsBetween(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
