package earnings

import (
	"testing"
	"time"

	"github.com/lavorotracker/paycalc-backend-go/internal/domain/earnings"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func breakdownFixture(day time.Time, total string) earnings.DailyBreakdown {
	amount := decimal.RequireFromString(total)
	return earnings.DailyBreakdown{
		Date: day,
		Kind: "ordinary",
		Ordinary: earnings.Bands{
			Day: earnings.BandAmount{Hours: decimal.NewFromInt(8), Earnings: amount},
		},
		Total: amount,
	}
}

func TestAggregateMonth_Totals(t *testing.T) {
	t.Parallel()

	days := []earnings.DailyBreakdown{
		breakdownFixture(date(2026, time.March, 2), "78.96"),
		breakdownFixture(date(2026, time.March, 3), "78.96"),
	}
	bare := []BareStandby{
		{Date: date(2026, time.March, 14), Indemnity: decimal.RequireFromString("7.03")},
	}

	agg := AggregateMonth(2026, time.March, days, bare)

	assert.Equal(t, 2, agg.DaysRecorded)
	assert.Equal(t, 1, agg.BareStandbyDays)
	assert.True(t, agg.OrdinaryHours.Equal(decimal.NewFromInt(16)))
	assert.True(t, agg.OrdinaryTotal.Equal(decimal.RequireFromString("157.92")), "got %s", agg.OrdinaryTotal)
	assert.True(t, agg.StandbyIndemnity.Equal(decimal.RequireFromString("7.03")))
	assert.True(t, agg.Total.Equal(decimal.RequireFromString("164.95")), "got %s", agg.Total)
}

func TestAggregateMonth_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := breakdownFixture(date(2026, time.March, 2), "100.00")
	b := breakdownFixture(date(2026, time.March, 3), "50.00")
	c := breakdownFixture(date(2026, time.March, 4), "25.00")

	forward := AggregateMonth(2026, time.March, []earnings.DailyBreakdown{a, b, c}, nil)
	reversed := AggregateMonth(2026, time.March, []earnings.DailyBreakdown{c, b, a}, nil)

	assert.True(t, forward.Total.Equal(reversed.Total))
	assert.True(t, forward.OrdinaryTotal.Equal(reversed.OrdinaryTotal))
	assert.Equal(t, forward.DaysRecorded, reversed.DaysRecorded)
}

func TestAggregateMonth_TravelTimeCountsAsOrdinary(t *testing.T) {
	t.Parallel()

	d := breakdownFixture(date(2026, time.March, 2), "78.96")
	d.TravelTimeHours = decimal.NewFromInt(1)
	d.TravelTimeEarnings = decimal.RequireFromString("9.87")

	agg := AggregateMonth(2026, time.March, []earnings.DailyBreakdown{d}, nil)

	assert.True(t, agg.OrdinaryHours.Equal(decimal.NewFromInt(9)), "got %s", agg.OrdinaryHours)
	assert.True(t, agg.OrdinaryTotal.Equal(decimal.RequireFromString("88.83")), "got %s", agg.OrdinaryTotal)
}

func TestAggregateMonth_WeekendWorkDays(t *testing.T) {
	t.Parallel()

	workedSaturday := breakdownFixture(date(2026, time.March, 7), "98.70")
	workedSaturday.IsSaturday = true

	// A Sunday standby-only day: flags set, but no worked hours.
	idleSunday := earnings.DailyBreakdown{
		Date:             date(2026, time.March, 8),
		Kind:             "ordinary",
		IsSunday:         true,
		StandbyIndemnity: decimal.RequireFromString("10.25"),
		Total:            decimal.RequireFromString("10.25"),
	}

	agg := AggregateMonth(2026, time.March, []earnings.DailyBreakdown{workedSaturday, idleSunday}, nil)

	assert.Equal(t, 1, agg.WeekendWorkDays)
}

func TestAggregateMonth_NightHours(t *testing.T) {
	t.Parallel()

	d := breakdownFixture(date(2026, time.March, 2), "100.00")
	d.Ordinary.Night = earnings.BandAmount{Hours: decimal.NewFromInt(2), Earnings: decimal.RequireFromString("26.649")}
	d.Overtime.Night = earnings.BandAmount{Hours: decimal.NewFromInt(1), Earnings: decimal.RequireFromString("13.3245")}

	agg := AggregateMonth(2026, time.March, []earnings.DailyBreakdown{d}, nil)

	assert.True(t, agg.NightHours.Equal(decimal.NewFromInt(3)), "got %s", agg.NightHours)
}

func TestAggregateMonth_Shares(t *testing.T) {
	t.Parallel()

	d := breakdownFixture(date(2026, time.March, 2), "200.00")
	d.Ordinary.Day.Earnings = decimal.NewFromInt(150)
	d.TravelAllowance = decimal.NewFromInt(50)

	agg := AggregateMonth(2026, time.March, []earnings.DailyBreakdown{d}, nil)

	assert.True(t, agg.OrdinaryShare.Equal(decimal.NewFromInt(75)), "got %s", agg.OrdinaryShare)
	assert.True(t, agg.TravelShare.Equal(decimal.NewFromInt(25)), "got %s", agg.TravelShare)
	assert.True(t, agg.OvertimeShare.IsZero())
}

func TestAggregateMonth_EmptyMonth(t *testing.T) {
	t.Parallel()

	agg := AggregateMonth(2026, time.March, nil, nil)

	assert.Equal(t, 0, agg.DaysRecorded)
	assert.True(t, agg.Total.IsZero())
	assert.True(t, agg.OrdinaryShare.IsZero())
	assert.True(t, agg.StandbyShare.IsZero())
}
