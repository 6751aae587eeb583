package timesheet

// Status is the display status of a single timesheet day. It is a superset
// of the statuses persisted on attendance records: Pending, Not Updated,
// Weekend and Holiday are synthesized during derivation when no (or only a
// partial) record exists for a day.
type Status string

const (
	StatusFullDay    Status = "Full Day"
	StatusHalfDay    Status = "Half Day"
	StatusLeave      Status = "Leave"
	StatusAbsent     Status = "Absent"
	StatusPending    Status = "Pending"
	StatusNotUpdated Status = "Not Updated"
	StatusBlocked    Status = "Blocked"
	StatusHoliday    Status = "Holiday"
	StatusWeekend    Status = "Weekend"
)

// storedStatuses maps the compact tokens persisted on attendance records to
// display statuses. Unknown tokens map to the empty Status and fall through
// to the derivation rules.
var storedStatuses = map[string]Status{
	"FullDay":    StatusFullDay,
	"HalfDay":    StatusHalfDay,
	"Leave":      StatusLeave,
	"Absent":     StatusAbsent,
	"Pending":    StatusPending,
	"NotUpdated": StatusNotUpdated,
	"Blocked":    StatusBlocked,
	"Holiday":    StatusHoliday,
	"Weekend":    StatusWeekend,
}

// ParseStoredStatus converts a persisted status token to its display status.
func ParseStoredStatus(token string) (Status, bool) {
	s, ok := storedStatuses[token]
	return s, ok
}

// ResolveInput carries everything the status resolver needs for one day:
// the persisted status (empty when no record exists or the record carries no
// status), the raw clock strings, and the temporal flags computed from
// calendar arithmetic against the reference "now".
type ResolveInput struct {
	Stored    Status
	Login     string
	Logout    string
	IsToday   bool
	IsFuture  bool
	IsWeekend bool
	IsHoliday bool
}

// rule is one entry of the ordered status rule table. Rules are evaluated
// top to bottom and the first match wins, which makes the priority between
// persisted statuses, holidays, weekends and clock-derived statuses explicit
// and testable in isolation.
type rule struct {
	name    string
	matches func(in ResolveInput) bool
	status  func(in ResolveInput) Status
}

// trustedStored are the persisted statuses that are taken verbatim when
// present. Pending is deliberately absent: a stored Pending is re-derived
// on every read, so today's open session stays Pending from the temporal
// rules while an abandoned past day falls through to Leave.
var trustedStored = map[Status]bool{
	StatusFullDay:    true,
	StatusHalfDay:    true,
	StatusLeave:      true,
	StatusNotUpdated: true,
}

func storedWins(in ResolveInput) bool {
	return trustedStored[in.Stored]
}

var statusRules = []rule{
	{
		name:    "persisted status is authoritative",
		matches: storedWins,
		status:  func(in ResolveInput) Status { return in.Stored },
	},
	{
		name:    "holiday",
		matches: func(in ResolveInput) bool { return in.IsHoliday },
		status:  func(ResolveInput) Status { return StatusHoliday },
	},
	{
		// Unworked future and weekend days render as Leave rather than a
		// neutral placeholder. Legacy convention, kept on purpose.
		name: "future or weekend without login",
		matches: func(in ResolveInput) bool {
			return (in.IsFuture || in.IsWeekend) && !hasClock(in.Login)
		},
		status: func(ResolveInput) Status { return StatusLeave },
	},
	{
		name: "worked hours",
		matches: func(in ResolveInput) bool {
			return hasClock(in.Login) && hasClock(in.Logout)
		},
		status: func(in ResolveInput) Status {
			login, _ := ParseClock(in.Login)
			logout, _ := ParseClock(in.Logout)
			// Exactly six hours counts as a full day.
			if logout-login >= 6*60 {
				return StatusFullDay
			}
			return StatusHalfDay
		},
	},
	{
		name: "open session today",
		matches: func(in ResolveInput) bool {
			return in.IsToday && hasClock(in.Login) && !hasClock(in.Logout)
		},
		status: func(ResolveInput) Status { return StatusPending },
	},
	{
		name: "past day with missing logout",
		matches: func(in ResolveInput) bool {
			return !in.IsToday && !in.IsFuture && hasClock(in.Login) && !hasClock(in.Logout)
		},
		status: func(ResolveInput) Status { return StatusNotUpdated },
	},
	{
		name: "past day without login",
		matches: func(in ResolveInput) bool {
			return !in.IsToday && !in.IsFuture && !hasClock(in.Login)
		},
		status: func(ResolveInput) Status { return StatusLeave },
	},
	{
		name:    "default",
		matches: func(ResolveInput) bool { return true },
		status: func(in ResolveInput) Status {
			if in.IsToday {
				return StatusPending
			}
			return StatusLeave
		},
	},
}

// Resolve derives the display status for one day. It walks the ordered rule
// table and returns the result of the first matching rule.
func Resolve(in ResolveInput) Status {
	for _, r := range statusRules {
		if r.matches(in) {
			return r.status(in)
		}
	}
	// The table ends with a catch-all, so this is unreachable.
	return StatusPending
}

// hasClock reports whether s holds a parseable clock value. Malformed
// strings count as absent, matching the resolver's availability-first
// degradation.
func hasClock(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}
