package earnings

import (
	"testing"

	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalcStandbyIndemnity_Matrix(t *testing.T) {
	t.Parallel()

	cfg := settings.Defaults("user-1")

	// Weekday, 24h tier.
	got := CalcStandbyIndemnity(cfg, false, false, false)
	assert.True(t, got.Equal(decimal.RequireFromString("7.03")), "got %s", got)

	// Weekday, 16h tier.
	cfg.StandbyTier = settings.StandbyTier16
	got = CalcStandbyIndemnity(cfg, false, false, false)
	assert.True(t, got.Equal(decimal.RequireFromString("4.89")), "got %s", got)

	// Sunday and holiday always use the rest-day amount.
	assert.True(t, CalcStandbyIndemnity(cfg, false, true, false).Equal(decimal.RequireFromString("10.25")))
	assert.True(t, CalcStandbyIndemnity(cfg, false, false, true).Equal(decimal.RequireFromString("10.25")))
}

func TestCalcStandbyIndemnity_SaturdayRestSetting(t *testing.T) {
	t.Parallel()

	// Saturday with the rest-day setting off pays the weekday amount.
	cfg := settings.Defaults("user-1")
	cfg.StandbyTier = settings.StandbyTier24
	cfg.StandbySaturdayRest = false
	got := CalcStandbyIndemnity(cfg, true, false, false)
	assert.True(t, got.Equal(decimal.RequireFromString("7.03")), "got %s", got)

	cfg.StandbySaturdayRest = true
	got = CalcStandbyIndemnity(cfg, true, false, false)
	assert.True(t, got.Equal(decimal.RequireFromString("10.25")), "got %s", got)
}

func TestCalcStandbyIndemnity_CustomOverrides(t *testing.T) {
	t.Parallel()

	cfg := settings.Defaults("user-1")
	custom := decimal.RequireFromString("8.50")
	cfg.StandbyWeekday24 = &custom

	got := CalcStandbyIndemnity(cfg, false, false, false)
	assert.True(t, got.Equal(custom), "got %s", got)

	holidayCustom := decimal.RequireFromString("12.00")
	cfg.StandbyHoliday = &holidayCustom
	got = CalcStandbyIndemnity(cfg, false, true, false)
	assert.True(t, got.Equal(holidayCustom), "got %s", got)
}

func TestCalcInterventionEarnings_AlwaysOrdinaryRate(t *testing.T) {
	t.Parallel()

	cfg := settings.Defaults("user-1")
	rt := NewRateTable(cfg)

	// One night-band work hour: 9.87 * 1.35 = 13.3245.
	interventions := []timesheet.Intervention{
		{WorkStart1: "22:00", WorkEnd1: "23:00"},
	}
	got := CalcInterventionEarnings(rt, cfg, decimal.NewFromInt(1), interventions)
	assert.True(t, got.Equal(decimal.RequireFromString("13.3245")), "got %s", got)
}

func TestCalcInterventionEarnings_TravelAtBaseRate(t *testing.T) {
	t.Parallel()

	cfg := settings.Defaults("user-1")
	rt := NewRateTable(cfg)

	// Half an hour of intervention travel at the plain hourly rate.
	interventions := []timesheet.Intervention{
		{TravelStart1: "21:00", TravelEnd1: "21:30"},
	}
	got := CalcInterventionEarnings(rt, cfg, decimal.NewFromInt(1), interventions)
	assert.True(t, got.Equal(decimal.RequireFromString("4.935")), "got %s", got)
}

func TestCalcInterventionEarnings_MidnightCrossing(t *testing.T) {
	t.Parallel()

	cfg := settings.Defaults("user-1")
	rt := NewRateTable(cfg)

	// 23:30-00:30 is one night-band hour, never a negative duration.
	interventions := []timesheet.Intervention{
		{WorkStart1: "23:30", WorkEnd1: "00:30"},
	}
	got := CalcInterventionEarnings(rt, cfg, decimal.NewFromInt(1), interventions)
	assert.True(t, got.Equal(decimal.RequireFromString("13.3245")), "got %s", got)
}

func TestCalcInterventionEarnings_MalformedClocksDegrade(t *testing.T) {
	t.Parallel()

	cfg := settings.Defaults("user-1")
	rt := NewRateTable(cfg)

	interventions := []timesheet.Intervention{
		{WorkStart1: "nope", WorkEnd1: "23:00", TravelStart1: "21:00", TravelEnd1: "bad"},
	}
	got := CalcInterventionEarnings(rt, cfg, decimal.NewFromInt(1), interventions)
	assert.True(t, got.IsZero(), "got %s", got)
}
