package employee

import (
	"time"

	"github.com/tracklab/timesheet-backend-go/internal/domain/user"
)

// Employee is the employee-details master record behind
// /api/v1/employee-details.
type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	Designation  *string
	Role         user.Role
	JoinDate     *time.Time
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
