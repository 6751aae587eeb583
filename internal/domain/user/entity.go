package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access: edit anyone, manage blockers and holidays
	RoleManager  Role = "manager"  // Can view and edit mapped employees
	RoleEmployee Role = "employee" // Self-service attendance only
)

// IsPrivileged reports whether the role bypasses the editable-month lock.
// Manual blockers apply to every role.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleManager
}

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
