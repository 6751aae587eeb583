package employee

import (
	"github.com/tracklab/timesheet-backend-go/internal/domain/user"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/validator"
)

var validRoles = []string{
	string(user.RoleAdmin),
	string(user.RoleManager),
	string(user.RoleEmployee),
}

type CreateRequest struct {
	EmployeeCode string  `json:"employeeCode"`
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Designation  *string `json:"designation,omitempty"`
	Role         string  `json:"role"`
	JoinDate     *string `json:"joinDate,omitempty"` // YYYY-MM-DD
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeCode",
			Message: "employeeCode is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if !validator.IsInSlice(r.Role, validRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, manager, employee",
		})
	}

	if r.JoinDate != nil && *r.JoinDate != "" {
		if _, valid := validator.IsValidDate(*r.JoinDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "joinDate",
				Message: "joinDate must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRequest struct {
	ID          string  `json:"-"`
	FullName    *string `json:"fullName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Role        *string `json:"role,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, validRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, manager, employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employeeCode"`
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Designation  *string `json:"designation,omitempty"`
	Role         string  `json:"role"`
	JoinDate     *string `json:"joinDate,omitempty"`
	Active       bool    `json:"active"`
}
