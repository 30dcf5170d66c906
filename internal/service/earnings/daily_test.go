package earnings

import (
	"testing"
	"time"

	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-04 is a plain Wednesday, 2026-03-07 a Saturday, 2026-03-08 a Sunday.
var (
	wednesday = date(2026, time.March, 4)
	saturday  = date(2026, time.March, 7)
)

func ordinaryRecord(day time.Time) timesheet.WorkRecord {
	return timesheet.WorkRecord{
		UserID:     "user-1",
		Date:       day,
		Kind:       timesheet.DayOrdinary,
		WorkStart1: "09:00",
		WorkEnd1:   "17:00",
	}
}

func TestDailyCalculator_MissingDate(t *testing.T) {
	t.Parallel()

	calc := NewDailyCalculator(settings.Defaults("user-1"))
	_, err := calc.Calculate(timesheet.WorkRecord{Kind: timesheet.DayOrdinary})
	assert.ErrorIs(t, err, timesheet.ErrMissingDate)
}

func TestDailyCalculator_PlainWeekday(t *testing.T) {
	t.Parallel()

	calc := NewDailyCalculator(settings.Defaults("user-1"))
	out, err := calc.Calculate(ordinaryRecord(wednesday))
	require.NoError(t, err)

	assert.True(t, out.Ordinary.Hours().Equal(decimal.NewFromInt(8)))
	assert.True(t, out.Ordinary.Earnings().Equal(decimal.RequireFromString("78.96")), "got %s", out.Ordinary.Earnings())
	assert.True(t, out.Overtime.Hours().IsZero())
	assert.True(t, out.TravelAllowance.Equal(decimal.RequireFromString("16.41")))
	assert.False(t, out.IsSaturday)
	assert.False(t, out.IsSunday)
	assert.False(t, out.IsHoliday)
}

func TestDailyCalculator_OvertimeBeyondThreshold(t *testing.T) {
	t.Parallel()

	rec := ordinaryRecord(wednesday)
	rec.WorkStart1, rec.WorkEnd1 = "08:00", "18:00"

	calc := NewDailyCalculator(settings.Defaults("user-1"))
	out, err := calc.Calculate(rec)
	require.NoError(t, err)

	assert.True(t, out.Ordinary.Hours().Equal(decimal.NewFromInt(8)))
	assert.True(t, out.Overtime.Hours().Equal(decimal.NewFromInt(2)))
	// Two overtime day-band hours: 2 * 9.87 * 1.20.
	assert.True(t, out.Overtime.Earnings().Equal(decimal.RequireFromString("23.688")), "got %s", out.Overtime.Earnings())
}

func TestDailyCalculator_TravelConsumesThresholdBudget(t *testing.T) {
	t.Parallel()

	rec := ordinaryRecord(wednesday)
	rec.TravelStart1, rec.TravelEnd1 = "07:00", "08:00"
	rec.WorkStart1, rec.WorkEnd1 = "08:00", "16:00"

	calc := NewDailyCalculator(settings.Defaults("user-1"))
	out, err := calc.Calculate(rec)
	require.NoError(t, err)

	// The travel hour eats an hour of ordinary budget but is itself paid at
	// the base rate, so only seven work hours remain ordinary.
	assert.True(t, out.TravelTimeHours.Equal(decimal.NewFromInt(1)))
	assert.True(t, out.TravelTimeEarnings.Equal(decimal.RequireFromString("9.87")))
	assert.True(t, out.Ordinary.Hours().Equal(decimal.NewFromInt(7)))
	assert.True(t, out.Overtime.Hours().Equal(decimal.NewFromInt(1)))
	assert.True(t, out.Overtime.Earnings().Equal(decimal.RequireFromString("11.844")), "got %s", out.Overtime.Earnings())
}

func TestDailyCalculator_SaturdayMultiplier(t *testing.T) {
	t.Parallel()

	calc := NewDailyCalculator(settings.Defaults("user-1"))
	out, err := calc.Calculate(ordinaryRecord(saturday))
	require.NoError(t, err)

	assert.True(t, out.IsSaturday)
	// 8 day-band hours at max(1.0, 1.25): 8 * 9.87 * 1.25.
	assert.True(t, out.Ordinary.Earnings().Equal(decimal.RequireFromString("98.7")), "got %s", out.Ordinary.Earnings())
}

func TestDailyCalculator_FixedPayKinds(t *testing.T) {
	t.Parallel()

	calc := NewDailyCalculator(settings.Defaults("user-1"))

	for _, kind := range []timesheet.DayKind{
		timesheet.DayVacation,
		timesheet.DaySick,
		timesheet.DayCompensatoryRest,
		timesheet.DayPaidHoliday,
		timesheet.DayFixedPay,
	} {
		rec := ordinaryRecord(wednesday)
		rec.Kind = kind
		rec.LunchVoucher = true // ignored on fixed-pay days

		out, err := calc.Calculate(rec)
		require.NoError(t, err)
		assert.True(t, out.FixedPay.Equal(decimal.RequireFromString("78.96")), "kind %s", kind)
		assert.True(t, out.Total.Equal(out.FixedPay), "kind %s", kind)
		assert.True(t, out.Ordinary.Hours().IsZero(), "kind %s", kind)
	}
}

func TestDailyCalculator_OnCallIndemnity(t *testing.T) {
	t.Parallel()

	rec := ordinaryRecord(wednesday)
	rec.OnCall = true

	calc := NewDailyCalculator(settings.Defaults("user-1"))
	out, err := calc.Calculate(rec)
	require.NoError(t, err)

	assert.True(t, out.StandbyIndemnity.Equal(decimal.RequireFromString("7.03")))
	assert.True(t, out.StandbyEarnings.IsZero())
}

func TestDailyCalculator_MealAllowance(t *testing.T) {
	t.Parallel()

	rec := ordinaryRecord(wednesday)
	rec.LunchVoucher = true
	rec.DinnerCash = true

	calc := NewDailyCalculator(settings.Defaults("user-1"))
	out, err := calc.Calculate(rec)
	require.NoError(t, err)

	assert.True(t, out.MealAllowance.Equal(decimal.RequireFromString("12.29")), "got %s", out.MealAllowance)
}

func TestDailyCalculator_TotalCountsEachItemOnce(t *testing.T) {
	t.Parallel()

	rec := ordinaryRecord(wednesday)
	rec.TravelStart1, rec.TravelEnd1 = "07:00", "08:00"
	rec.WorkStart1, rec.WorkEnd1 = "08:00", "12:00"
	rec.WorkStart2, rec.WorkEnd2 = "13:00", "18:00"
	rec.OnCall = true
	rec.Interventions = []timesheet.Intervention{{WorkStart1: "22:00", WorkEnd1: "23:00"}}
	rec.LunchVoucher = true

	calc := NewDailyCalculator(settings.Defaults("user-1"))
	out, err := calc.Calculate(rec)
	require.NoError(t, err)

	sum := out.Ordinary.Earnings().
		Add(out.Overtime.Earnings()).
		Add(out.TravelTimeEarnings).
		Add(out.TravelAllowance).
		Add(out.StandbyIndemnity).
		Add(out.StandbyEarnings).
		Add(out.MealAllowance)
	assert.True(t, out.Total.Equal(sum), "total %s, sum %s", out.Total, sum)
}

func TestDailyCalculator_Deterministic(t *testing.T) {
	t.Parallel()

	rec := ordinaryRecord(saturday)
	rec.OnCall = true
	rec.Interventions = []timesheet.Intervention{{WorkStart1: "21:00", WorkEnd1: "23:30"}}

	calc := NewDailyCalculator(settings.Defaults("user-1"))
	first, err := calc.Calculate(rec)
	require.NoError(t, err)
	second, err := calc.Calculate(rec)
	require.NoError(t, err)

	assert.True(t, first.Total.Equal(second.Total))
	assert.Equal(t, first, second)
}

func TestDailyCalculator_MoreWorkNeverPaysLess(t *testing.T) {
	t.Parallel()

	calc := NewDailyCalculator(settings.Defaults("user-1"))
	prev := decimal.Zero

	for _, end := range []string{"13:00", "17:00", "19:00", "21:00", "23:00"} {
		rec := ordinaryRecord(wednesday)
		rec.WorkEnd1 = end

		out, err := calc.Calculate(rec)
		require.NoError(t, err)
		assert.True(t, out.Total.GreaterThanOrEqual(prev), "end %s: total %s < previous %s", end, out.Total, prev)
		prev = out.Total
	}
}

func TestBareStandbyIndemnity(t *testing.T) {
	t.Parallel()

	cfg := settings.Defaults("user-1")

	assert.True(t, BareStandbyIndemnity(cfg, wednesday).Equal(decimal.RequireFromString("7.03")))
	assert.True(t, BareStandbyIndemnity(cfg, date(2026, time.March, 8)).Equal(decimal.RequireFromString("10.25")))
}
