package oncall

import (
	"context"
	"time"
)

type CalendarRepository interface {
	Mark(ctx context.Context, userID string, date time.Time) (Day, error)
	Unmark(ctx context.Context, userID string, date time.Time) error
	ListByMonth(ctx context.Context, userID string, year int, month time.Month) ([]Day, error)
}
