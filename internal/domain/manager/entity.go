package manager

import "time"

// Mapping assigns an employee to a manager. A manager may only view and
// edit timesheets of employees mapped to them.
type Mapping struct {
	ID         string
	ManagerID  string
	EmployeeID string
	CreatedAt  time.Time

	// DTO / Join
	ManagerName  *string
	EmployeeName *string
}
