package timesheet

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input string
		want  Minutes
		ok    bool
	}{
		{"09:00", 9 * 60, true},
		{"00:00", 0, true},
		{"23:59", 23*60 + 59, true},
		{"9:05 AM", 9*60 + 5, true},
		{"12:00 AM", 0, true},
		{"12:00 PM", 12 * 60, true},
		{"5:30 pm", 17*60 + 30, true},
		{"5:30PM", 17*60 + 30, true},
		{"  09:00  ", 9 * 60, true},
		{"", 0, false},
		{"garbage", 0, false},
		{"25:00", 0, false},
		{"09:60", 0, false},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if c.ok {
			if err != nil {
				t.Errorf("ParseClock(%q) unexpected error: %v", c.input, err)
				continue
			}
			if got != c.want {
				t.Errorf("ParseClock(%q) = %d, want %d", c.input, got, c.want)
			}
		} else if err == nil {
			t.Errorf("ParseClock(%q) = %d, want error", c.input, got)
		}
	}
}

func TestParseClockMalformedErrorCarriesRawValue(t *testing.T) {
	_, err := ParseClock("nonsense")
	var malformed *MalformedClockError
	if !errors.As(err, &malformed) {
		t.Fatalf("ParseClock error = %T, want *MalformedClockError", err)
	}
	if malformed.Raw != "nonsense" {
		t.Errorf("Raw = %q, want %q", malformed.Raw, "nonsense")
	}
}

func TestCalculateTotal(t *testing.T) {
	cases := []struct {
		login, logout string
		want          string
	}{
		{"09:00", "17:30", "08:30"},
		{"09:00 AM", "06:00 PM", "09:00"},
		{"09:00", "09:00", "00:00"},
		{"9:00 AM", "5:00 PM", "08:00"},
		{"09:00", "3:00 PM", "06:00"}, // mixed 24h and AM/PM
		{"17:00", "09:00", TotalSentinel},
		{"", "17:00", TotalSentinel},
		{"09:00", "", TotalSentinel},
		{"garbage", "17:00", TotalSentinel},
		{"", "", TotalSentinel},
	}
	for _, c := range cases {
		got := CalculateTotal(c.login, c.logout)
		if got != c.want {
			t.Errorf("CalculateTotal(%q, %q) = %q, want %q", c.login, c.logout, got, c.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{8, "08:00"},
		{8.5, "08:30"},
		{0, "00:00"},
		{6.25, "06:15"},
		{-1, TotalSentinel},
	}
	for _, c := range cases {
		if got := FormatHours(c.hours); got != c.want {
			t.Errorf("FormatHours(%v) = %q, want %q", c.hours, got, c.want)
		}
	}
}
