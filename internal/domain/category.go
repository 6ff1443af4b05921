package domain

import "time"

// Category groups a user's expenses. Names are unique per user.
type Category struct {
	ID          int64
	UserID      int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
