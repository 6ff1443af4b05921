package domain

import "time"

// Module is a named, permission-scoped application feature. LinkName is the
// unique slug the frontend routes on.
type Module struct {
	ID          int64
	Name        string
	LinkName    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ModulePermission records that a role may access a module. At most one row
// exists per (role, module) pair; granting and revoking is a toggle.
type ModulePermission struct {
	ID        int64
	RoleID    int64
	ModuleID  int64
	CreatedAt time.Time
}

// ModuleAccess is a module annotated with whether a particular role holds a
// permission row for it.
type ModuleAccess struct {
	Module

	HasPermission bool
}
