package domain

import "time"

type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // bcrypt encoded
	RoleID       int64  // Foreign key to roles table
	// Token holds the most recently issued access token. Advisory only:
	// verification never consults it, so it is not a revocation mechanism.
	Token     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Principal is the resolved, authenticated identity for a request. It is
// built per-request from the token claims and store lookups and never
// persisted.
type Principal struct {
	UserID   int64
	Email    string
	RoleID   int64
	RoleName string
}
