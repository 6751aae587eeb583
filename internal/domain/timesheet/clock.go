package timesheet

import (
	"fmt"
	"strings"
	"time"
)

// Minutes is a clock value expressed as minutes after midnight.
type Minutes int

// TotalSentinel is returned by CalculateTotal when a duration cannot be
// computed: missing or malformed clock strings, or logout before login.
const TotalSentinel = "--:--"

// MalformedClockError reports a clock string that matched none of the
// accepted layouts. Callers that want the legacy "treat as absent" behavior
// can ignore it; callers that care can log the raw value.
type MalformedClockError struct {
	Raw string
}

func (e *MalformedClockError) Error() string {
	return fmt.Sprintf("malformed clock value %q", e.Raw)
}

var clockLayouts = []string{"15:04", "3:04 PM", "3:04PM"}

// ParseClock parses a time-of-day string in either 24-hour "HH:MM" or
// 12-hour "hh:mm AM/PM" form and returns minutes after midnight. The AM/PM
// marker is case-insensitive. A value that parses under no layout returns a
// *MalformedClockError.
func ParseClock(raw string) (Minutes, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return 0, &MalformedClockError{Raw: raw}
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Minutes(t.Hour()*60 + t.Minute()), nil
		}
	}
	return 0, &MalformedClockError{Raw: raw}
}

// CalculateTotal computes the elapsed "HH:MM" between two clock strings.
// The two sides may independently use 24-hour or AM/PM form. Any parse
// failure, and a logout earlier than the login, degrade to TotalSentinel;
// this function never returns an error.
func CalculateTotal(login, logout string) string {
	in, err := ParseClock(login)
	if err != nil {
		return TotalSentinel
	}
	out, err := ParseClock(logout)
	if err != nil {
		return TotalSentinel
	}
	if out < in {
		return TotalSentinel
	}
	d := out - in
	return fmt.Sprintf("%02d:%02d", d/60, d%60)
}

// FormatHours renders a decimal hour count as "HH:MM".
func FormatHours(hours float64) string {
	if hours < 0 {
		return TotalSentinel
	}
	total := int(hours*60 + 0.5)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
