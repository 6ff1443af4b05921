package domain

import "time"

// Role is a named permission group. Names are unique; deleting a role is
// blocked while any user still references it.
type Role struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Well-known role names, matching the seeded defaults.
const (
	RoleSuperAdmin = "Super Admin"
	RoleAdmin      = "Admin"
	RoleUser       = "User"
)
