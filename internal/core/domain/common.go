package domain

import "time"

// DateLayout is the calendar-date format used for transaction dates and goal
// deadlines throughout the application (ISO 8601, date only).
const DateLayout = "2006-01-02"

// MonthLayout identifies a calendar month, used for trend bucketing.
const MonthLayout = "2006-01"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
