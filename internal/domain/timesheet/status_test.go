package timesheet

import "testing"

func TestResolvePersistedStatusWins(t *testing.T) {
	cases := []struct {
		name string
		in   ResolveInput
		want Status
	}{
		{
			"persisted full day beats clock evidence",
			ResolveInput{Stored: StatusFullDay, Login: "09:00", Logout: "11:00"},
			StatusFullDay,
		},
		{
			"persisted leave beats weekend",
			ResolveInput{Stored: StatusLeave, IsWeekend: true},
			StatusLeave,
		},
		{
			"persisted not-updated survives",
			ResolveInput{Stored: StatusNotUpdated, Login: "09:00"},
			StatusNotUpdated,
		},
		{
			"persisted status beats holiday",
			ResolveInput{Stored: StatusHalfDay, IsHoliday: true},
			StatusHalfDay,
		},
		{
			// Pending is not an authoritative stored status: a past day
			// that never progressed beyond Pending reads as Leave.
			"persisted pending on a past day falls through",
			ResolveInput{Stored: StatusPending},
			StatusLeave,
		},
		{
			"persisted pending today is recomputed from clocks",
			ResolveInput{Stored: StatusPending, IsToday: true, Login: "09:00", Logout: "17:00"},
			StatusFullDay,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Resolve(c.in); got != c.want {
				t.Errorf("Resolve(%+v) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestResolveHolidayPrecedence(t *testing.T) {
	// Holiday outranks weekend and clocks when nothing authoritative is
	// persisted.
	cases := []ResolveInput{
		{IsHoliday: true},
		{IsHoliday: true, IsWeekend: true},
		{IsHoliday: true, Login: "09:00", Logout: "17:00"},
		{IsHoliday: true, IsFuture: true},
	}
	for _, in := range cases {
		if got := Resolve(in); got != StatusHoliday {
			t.Errorf("Resolve(%+v) = %q, want %q", in, got, StatusHoliday)
		}
	}
}

func TestResolveWorkedHoursBoundary(t *testing.T) {
	cases := []struct {
		login, logout string
		want          Status
	}{
		{"09:00", "15:00", StatusFullDay}, // exactly six hours
		{"09:00", "14:59", StatusHalfDay},
		{"09:00", "15:01", StatusFullDay},
		{"08:00", "18:00", StatusFullDay},
		{"13:00", "14:00", StatusHalfDay},
	}
	for _, c := range cases {
		in := ResolveInput{Login: c.login, Logout: c.logout}
		if got := Resolve(in); got != c.want {
			t.Errorf("Resolve(login=%q logout=%q) = %q, want %q", c.login, c.logout, got, c.want)
		}
	}
}

func TestResolveTemporalRules(t *testing.T) {
	cases := []struct {
		name string
		in   ResolveInput
		want Status
	}{
		{"future without login", ResolveInput{IsFuture: true}, StatusLeave},
		{"weekend without login", ResolveInput{IsWeekend: true}, StatusLeave},
		{"today with open session", ResolveInput{IsToday: true, Login: "09:00"}, StatusPending},
		{"today without any clock", ResolveInput{IsToday: true}, StatusPending},
		{"past with missing logout", ResolveInput{Login: "09:00"}, StatusNotUpdated},
		{"past without login", ResolveInput{}, StatusLeave},
		{"weekend with worked clocks", ResolveInput{IsWeekend: true, Login: "10:00", Logout: "17:00"}, StatusFullDay},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Resolve(c.in); got != c.want {
				t.Errorf("Resolve(%+v) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestResolveMalformedClocksDegrade(t *testing.T) {
	// A malformed login counts as absent, so a past day degrades to Leave
	// rather than erroring.
	in := ResolveInput{Login: "garbage"}
	if got := Resolve(in); got != StatusLeave {
		t.Errorf("Resolve(malformed login, past) = %q, want %q", got, StatusLeave)
	}

	// Malformed logout with a good login on a past day reads as missing
	// logout.
	in = ResolveInput{Login: "09:00", Logout: "garbage"}
	if got := Resolve(in); got != StatusNotUpdated {
		t.Errorf("Resolve(malformed logout, past) = %q, want %q", got, StatusNotUpdated)
	}
}

func TestParseStoredStatus(t *testing.T) {
	cases := []struct {
		token string
		want  Status
		ok    bool
	}{
		{"FullDay", StatusFullDay, true},
		{"HalfDay", StatusHalfDay, true},
		{"NotUpdated", StatusNotUpdated, true},
		{"Weekend", StatusWeekend, true},
		{"bogus", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseStoredStatus(c.token)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseStoredStatus(%q) = (%q, %v), want (%q, %v)", c.token, got, ok, c.want, c.ok)
		}
	}
}
