package oncall

import (
	"context"
	"time"
)

type CalendarService interface {
	Mark(ctx context.Context, userID string, req MarkDayRequest) (DayResponse, error)
	Unmark(ctx context.Context, userID string, date string) error
	ListMonth(ctx context.Context, userID string, year int, month time.Month) ([]DayResponse, error)
}
