package attendance

import (
	"time"
)

// Location values accepted on an attendance record.
const (
	LocationOffice      = "Office"
	LocationWorkFromHome = "WorkFromHome"
	LocationClientPlace = "ClientPlace"
)

// Attendance is one employee's record for one worked (or logged) day.
// Records are sparse: the absence of a row for a date means "no data",
// not "absent". Uniqueness is (employee_id, working_date).
type Attendance struct {
	ID          string
	EmployeeID  string
	WorkingDate time.Time
	LoginTime   *string
	LogoutTime  *string
	Location    *string
	FirstHalf   *string
	SecondHalf  *string
	TotalHours  *float64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}
