package earnings

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type EarningsService interface {
	// DailyBreakdown computes the itemized breakdown for the user's record
	// on the given date.
	DailyBreakdown(ctx context.Context, userID string, date time.Time) (DailyBreakdown, error)
	// MonthlySummary folds the month's daily breakdowns, plus bare on-call
	// days from the calendar, into category totals and analytics.
	MonthlySummary(ctx context.Context, userID string, year int, month time.Month) (MonthlyAggregate, error)
	// EstimateNet converts a gross figure into a net estimate using the
	// user's configured method.
	EstimateNet(ctx context.Context, userID string, gross decimal.Decimal) (NetIncomeResult, error)
}
