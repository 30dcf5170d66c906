package timesheet

import (
	"context"
	"time"
)

type WorkRecordRepository interface {
	Create(ctx context.Context, record WorkRecord) (WorkRecord, error)
	Update(ctx context.Context, record WorkRecord) (WorkRecord, error)
	GetByID(ctx context.Context, id string, userID string) (WorkRecord, error)
	GetByDate(ctx context.Context, userID string, date time.Time) (WorkRecord, error)
	// ListByMonth returns the user's records for the month ordered by date.
	ListByMonth(ctx context.Context, userID string, year int, month time.Month) ([]WorkRecord, error)
	Delete(ctx context.Context, id string, userID string) error
}
