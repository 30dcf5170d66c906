package earnings

import (
	"testing"

	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func weekdayTravelInput(policy settings.TravelPolicy, hours string) TravelInput {
	return TravelInput{
		Hours:       decimal.RequireFromString(hours),
		DailyAmount: decimal.RequireFromString("16.41"),
		HourlyRate:  decimal.RequireFromString("9.87"),
		Policy:      policy,
		DayTypeMult: decimal.NewFromInt(1),
	}
}

func TestCalcTravelAllowance_FixedRate(t *testing.T) {
	t.Parallel()

	got := CalcTravelAllowance(weekdayTravelInput(settings.TravelFixedRate, "8"))
	assert.True(t, got.Equal(decimal.RequireFromString("16.41")), "got %s", got)
}

func TestCalcTravelAllowance_NoHoursNoOverride(t *testing.T) {
	t.Parallel()

	got := CalcTravelAllowance(weekdayTravelInput(settings.TravelFixedRate, "0"))
	assert.True(t, got.IsZero())
}

func TestCalcTravelAllowance_Proportional(t *testing.T) {
	t.Parallel()

	// 6.4 of 8 hours: 16.41 * 0.8 = 13.128.
	got := CalcTravelAllowance(weekdayTravelInput(settings.TravelProportionalCCNL, "6.4"))
	assert.True(t, got.Equal(decimal.RequireFromString("13.128")), "got %s", got)
}

func TestCalcTravelAllowance_ProportionalIgnoresOverride(t *testing.T) {
	t.Parallel()

	// The proportional result is already hour-scaled; the 0.5 override must
	// not halve it again.
	in := weekdayTravelInput(settings.TravelProportionalCCNL, "6.4")
	in.OverrideActive = true
	in.OverridePct = decimal.RequireFromString("0.5")

	got := CalcTravelAllowance(in)
	assert.True(t, got.Equal(decimal.RequireFromString("13.128")), "got %s", got)
}

func TestCalcTravelAllowance_ProportionalCapsAtFullDay(t *testing.T) {
	t.Parallel()

	got := CalcTravelAllowance(weekdayTravelInput(settings.TravelProportionalCCNL, "10"))
	assert.True(t, got.Equal(decimal.RequireFromString("16.41")), "got %s", got)
}

func TestCalcTravelAllowance_HalfAllowanceHalfDay(t *testing.T) {
	t.Parallel()

	short := CalcTravelAllowance(weekdayTravelInput(settings.TravelHalfAllowanceHalf, "5"))
	assert.True(t, short.Equal(decimal.RequireFromString("8.205")), "got %s", short)

	full := CalcTravelAllowance(weekdayTravelInput(settings.TravelHalfAllowanceHalf, "8"))
	assert.True(t, full.Equal(decimal.RequireFromString("16.41")), "got %s", full)
}

func TestCalcTravelAllowance_OverrideScalesFixedRate(t *testing.T) {
	t.Parallel()

	in := weekdayTravelInput(settings.TravelFixedRate, "8")
	in.OverrideActive = true
	in.OverridePct = decimal.RequireFromString("0.5")

	got := CalcTravelAllowance(in)
	assert.True(t, got.Equal(decimal.RequireFromString("8.205")), "got %s", got)
}

func TestCalcTravelAllowance_SundayNeedsSpecialDaysSetting(t *testing.T) {
	t.Parallel()

	in := weekdayTravelInput(settings.TravelFixedRate, "8")
	in.IsSunday = true
	in.DayTypeMult = decimal.RequireFromString("1.30")

	assert.True(t, CalcTravelAllowance(in).IsZero())

	in.ApplyOnSpecialDays = true
	in.SpecialPolicy = settings.TravelPercentageBonus
	got := CalcTravelAllowance(in)
	assert.True(t, got.Equal(decimal.RequireFromString("21.333")), "got %s", got)
}

func TestCalcTravelAllowance_SundayOverrideActivates(t *testing.T) {
	t.Parallel()

	// A per-record override activates the allowance even when the
	// special-days setting is off.
	in := weekdayTravelInput(settings.TravelFixedRate, "8")
	in.IsSunday = true
	in.DayTypeMult = decimal.RequireFromString("1.30")
	in.OverrideActive = true
	in.OverridePct = one
	in.SpecialPolicy = settings.TravelPercentageBonus

	got := CalcTravelAllowance(in)
	assert.True(t, got.Equal(decimal.RequireFromString("21.333")), "got %s", got)
}

func TestCalcTravelAllowance_SaturdayAlwaysEvaluated(t *testing.T) {
	t.Parallel()

	// Saturday skips the special-days activation gate entirely.
	in := weekdayTravelInput(settings.TravelFixedRate, "8")
	in.IsSaturday = true
	in.DayTypeMult = decimal.RequireFromString("1.25")
	in.SpecialPolicy = settings.TravelPercentageBonus

	got := CalcTravelAllowance(in)
	assert.True(t, got.Equal(decimal.RequireFromString("20.5125")), "got %s", got)
}

func TestCalcTravelAllowance_WorkRatePolicy(t *testing.T) {
	t.Parallel()

	in := weekdayTravelInput(settings.TravelFixedRate, "8")
	in.IsSaturday = true
	in.DayTypeMult = decimal.RequireFromString("1.25")
	in.SpecialPolicy = settings.TravelWorkRate
	in.TravelHours = decimal.NewFromInt(2)
	in.HourlyRate = decimal.NewFromInt(10)

	got := CalcTravelAllowance(in)
	assert.True(t, got.Equal(decimal.NewFromInt(25)), "got %s", got)
}
