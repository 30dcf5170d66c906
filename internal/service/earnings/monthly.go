package earnings

import (
	"time"

	"github.com/lavorotracker/paycalc-backend-go/internal/domain/earnings"
	"github.com/shopspring/decimal"
)

// BareStandby - an on-call calendar date that has no work record; it
// contributes only its indemnity to the monthly totals.
type BareStandby struct {
	Date      time.Time
	Indemnity decimal.Decimal
}

// AggregateMonth folds daily breakdowns and bare on-call days into category
// totals. Summation is commutative, so the fold is order-independent; each
// day must simply be visited exactly once. Analytics re-use the flags and
// per-band hour fields already in each breakdown, never the raw times.
func AggregateMonth(year int, month time.Month, days []earnings.DailyBreakdown, bare []BareStandby) earnings.MonthlyAggregate {
	agg := earnings.MonthlyAggregate{
		Year:            year,
		Month:           int(month),
		DaysRecorded:    len(days),
		BareStandbyDays: len(bare),
	}

	for _, d := range days {
		agg.OrdinaryHours = agg.OrdinaryHours.Add(d.Ordinary.Hours()).Add(d.TravelTimeHours)
		agg.OvertimeHours = agg.OvertimeHours.Add(d.Overtime.Hours())
		agg.NightHours = agg.NightHours.Add(d.NightHours())

		agg.OrdinaryTotal = agg.OrdinaryTotal.Add(d.OrdinaryTotal())
		agg.OvertimeTotal = agg.OvertimeTotal.Add(d.Overtime.Earnings())
		agg.TravelAllowanceTotal = agg.TravelAllowanceTotal.Add(d.TravelAllowance)
		agg.StandbyIndemnity = agg.StandbyIndemnity.Add(d.StandbyIndemnity)
		agg.StandbyEarnings = agg.StandbyEarnings.Add(d.StandbyEarnings)
		agg.MealAllowanceTotal = agg.MealAllowanceTotal.Add(d.MealAllowance)
		agg.FixedPayTotal = agg.FixedPayTotal.Add(d.FixedPay)

		agg.Total = agg.Total.Add(d.Total)

		if (d.IsSaturday || d.IsSunday) && d.WorkedHours().IsPositive() {
			agg.WeekendWorkDays++
		}
	}

	for _, b := range bare {
		agg.StandbyIndemnity = agg.StandbyIndemnity.Add(b.Indemnity)
		agg.Total = agg.Total.Add(b.Indemnity)
	}

	if agg.Total.IsPositive() {
		agg.OrdinaryShare = agg.OrdinaryTotal.Div(agg.Total).Mul(hundred)
		agg.OvertimeShare = agg.OvertimeTotal.Div(agg.Total).Mul(hundred)
		agg.TravelShare = agg.TravelAllowanceTotal.Div(agg.Total).Mul(hundred)
		agg.StandbyShare = agg.StandbyIndemnity.Add(agg.StandbyEarnings).Div(agg.Total).Mul(hundred)
	}

	return agg
}
