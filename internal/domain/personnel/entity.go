package personnel

import "time"

// Role gates access to the reporting surface.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

type Personnel struct {
	ID            string
	PersonnelCode string
	FullName      string
	Role          Role
	PasswordHash  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
