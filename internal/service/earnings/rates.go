package earnings

import (
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/shopspring/decimal"
)

// Contractual time-of-day differentials for ordinary work. These apply
// regardless of overtime status; the evening/night figures match the default
// overtime multipliers for the same bands.
var (
	ordinaryDayMult     = decimal.NewFromInt(1)
	ordinaryEveningMult = decimal.RequireFromString("1.25")
	ordinaryNightMult   = decimal.RequireFromString("1.35")
)

// RateTable resolves the multiplier for one minute of work. Candidates are
// always combined by taking the maximum, never multiplied together: stacking
// a day-type multiplier on top of a band multiplier is the compounding error
// this table exists to prevent.
type RateTable struct {
	cfg settings.CalcSettings
}

func NewRateTable(cfg settings.CalcSettings) RateTable {
	return RateTable{cfg: cfg}
}

func maxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

// DayTypeMultiplier - holiday and Sunday outrank Saturday when flags overlap.
func (rt RateTable) DayTypeMultiplier(isSaturday, isSunday, isHoliday bool) decimal.Decimal {
	switch {
	case isHoliday:
		return rt.cfg.HolidayMult
	case isSunday:
		return rt.cfg.SundayMult
	case isSaturday:
		return rt.cfg.SaturdayMult
	}
	return decimal.NewFromInt(1)
}

func ordinaryBandMultiplier(b Band) decimal.Decimal {
	switch b {
	case BandEvening:
		return ordinaryEveningMult
	case BandNight:
		return ordinaryNightMult
	}
	return ordinaryDayMult
}

func (rt RateTable) overtimeBandMultiplier(b Band) decimal.Decimal {
	switch b {
	case BandEvening:
		return rt.cfg.OvertimeEveningMult
	case BandNight:
		return rt.cfg.OvertimeNightMult
	}
	return rt.cfg.OvertimeDayMult
}

// OrdinaryMultiplier - within-threshold work: MAX of the band differential
// and the day-type multiplier.
func (rt RateTable) OrdinaryMultiplier(b Band, dayTypeMult decimal.Decimal) decimal.Decimal {
	return maxDecimal(ordinaryBandMultiplier(b), dayTypeMult)
}

// OvertimeMultiplier - beyond-threshold work: the overtime band multiplier
// replaces the ordinary differential, then the day-type multiplier competes
// by MAX as usual.
func (rt RateTable) OvertimeMultiplier(b Band, dayTypeMult decimal.Decimal) decimal.Decimal {
	return maxDecimal(rt.overtimeBandMultiplier(b), dayTypeMult)
}
