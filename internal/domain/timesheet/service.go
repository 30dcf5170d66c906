package timesheet

import (
	"context"
	"time"
)

type TimesheetService interface {
	Save(ctx context.Context, userID string, req SaveRecordRequest) (RecordResponse, error)
	Get(ctx context.Context, userID string, id string) (RecordResponse, error)
	ListMonth(ctx context.Context, userID string, year int, month time.Month) ([]RecordResponse, error)
	Delete(ctx context.Context, userID string, id string) error
}
