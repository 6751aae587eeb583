package manager

import (
	"github.com/tracklab/timesheet-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	ManagerID  string `json:"managerId"`
	EmployeeID string `json:"employeeId"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "managerId",
			Message: "managerId is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if r.ManagerID != "" && r.ManagerID == r.EmployeeID {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "an employee cannot be mapped to themselves",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MappingResponse struct {
	ID           string  `json:"id"`
	ManagerID    string  `json:"managerId"`
	ManagerName  *string `json:"managerName,omitempty"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName *string `json:"employeeName,omitempty"`
}
