package blocker

import "time"

// Blocker is an admin-authored date range during which an employee cannot
// edit attendance. The range is inclusive on both ends; multiple blockers
// for one employee are OR'd together. Blockers are created and deleted,
// never updated in place.
type Blocker struct {
	ID          string
	EmployeeID  string
	BlockedFrom time.Time
	BlockedTo   time.Time
	Reason      string
	BlockedBy   string
	CreatedAt   time.Time
}

// Covers reports whether d falls inside the blocked range, comparing
// calendar days only.
func (b Blocker) Covers(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	from := time.Date(b.BlockedFrom.Year(), b.BlockedFrom.Month(), b.BlockedFrom.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(b.BlockedTo.Year(), b.BlockedTo.Month(), b.BlockedTo.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(from) && !day.After(to)
}
