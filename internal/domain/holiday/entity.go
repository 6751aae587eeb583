package holiday

import "time"

// Holiday is a global master-calendar day off, looked up by exact calendar
// date during timesheet derivation.
type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
}
