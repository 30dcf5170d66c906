package oncall

import "time"

// Day - a calendar date marked as on-call independently of any work record.
// Days that also have a work record are paid through the record; days without
// one still earn the bare indemnity in the monthly aggregate.
type Day struct {
	ID        string
	UserID    string
	Date      time.Time
	CreatedAt time.Time
}
