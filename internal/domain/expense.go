package domain

import "time"

type Expense struct {
	ID          int64
	UserID      int64
	CategoryID  int64
	Amount      float64
	Description string
	// SpentAt is the date the expense was incurred, as opposed to when it
	// was recorded.
	SpentAt   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategorySpend is a per-category total for a user's spend report.
type CategorySpend struct {
	CategoryID   int64
	CategoryName string
	Total        float64
}

// MonthSpend is a per-calendar-month total for a user's spend report.
type MonthSpend struct {
	Year  int
	Month int
	Total float64
}
