package earnings

import (
	"time"

	"github.com/lavorotracker/paycalc-backend-go/internal/domain/earnings"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// DailyCalculator folds one work record and the active settings into an
// itemized breakdown. It holds no mutable state: two calls with the same
// inputs produce identical output.
type DailyCalculator struct {
	cfg   settings.CalcSettings
	rates RateTable
}

func NewDailyCalculator(cfg settings.CalcSettings) *DailyCalculator {
	return &DailyCalculator{cfg: cfg, rates: NewRateTable(cfg)}
}

type segment struct {
	start  int
	dur    int
	travel bool
}

// segments lists the day's legs in chronological convention: outbound travel,
// both work intervals, return travel. The order matters only for attributing
// minutes beyond the overtime threshold.
func (c *DailyCalculator) segments(rec timesheet.WorkRecord) []segment {
	pairs := [...]struct {
		start, end string
		travel     bool
	}{
		{rec.TravelStart1, rec.TravelEnd1, true},
		{rec.WorkStart1, rec.WorkEnd1, false},
		{rec.WorkStart2, rec.WorkEnd2, false},
		{rec.TravelStart2, rec.TravelEnd2, true},
	}

	var segs []segment
	for _, p := range pairs {
		start, ok := ParseClock(p.start)
		if !ok {
			continue
		}
		dur := Duration(p.start, p.end)
		if dur == 0 {
			continue
		}
		segs = append(segs, segment{start: start, dur: dur, travel: p.travel})
	}
	return segs
}

// Calculate produces the daily breakdown. The only hard failure is a record
// without a date: everything else degrades to a zero line item.
func (c *DailyCalculator) Calculate(rec timesheet.WorkRecord) (earnings.DailyBreakdown, error) {
	if rec.Date.IsZero() {
		return earnings.DailyBreakdown{}, timesheet.ErrMissingDate
	}

	out := earnings.DailyBreakdown{
		Date:       rec.Date,
		Kind:       string(rec.Kind),
		IsSaturday: rec.Date.Weekday() == time.Saturday,
		IsSunday:   rec.Date.Weekday() == time.Sunday,
		IsHoliday:  IsHoliday(rec.Date),
	}

	if rec.Kind.IsFixedPay() {
		out.FixedPay = c.cfg.DailyRate
		out.Total = out.FixedPay
		return out, nil
	}

	dayTypeMult := c.rates.DayTypeMultiplier(out.IsSaturday, out.IsSunday, out.IsHoliday)

	var ordinaryMin, overtimeMin BandMinutes
	travelMin := 0
	budget := c.cfg.OvertimeThresholdMinutes

	for _, seg := range c.segments(rec) {
		if seg.travel {
			travelMin += seg.dur
			if seg.dur < budget {
				budget -= seg.dur
			} else {
				budget = 0
			}
			continue
		}

		ordPart := seg.dur
		if ordPart > budget {
			ordPart = budget
		}
		budget -= ordPart
		otPart := seg.dur - ordPart

		for b, minutes := range SplitBands(seg.start, ordPart) {
			ordinaryMin[b] += minutes
		}
		for b, minutes := range SplitBands(seg.start+ordPart, otPart) {
			overtimeMin[b] += minutes
		}
	}

	for b := BandDay; b <= BandNight; b++ {
		ordHours := MinutesToHours(ordinaryMin[b])
		otHours := MinutesToHours(overtimeMin[b])
		ordAmount := ordHours.Mul(c.cfg.HourlyRate).Mul(c.rates.OrdinaryMultiplier(b, dayTypeMult))
		otAmount := otHours.Mul(c.cfg.HourlyRate).Mul(c.rates.OvertimeMultiplier(b, dayTypeMult))

		band := earnings.BandAmount{Hours: ordHours, Earnings: ordAmount}
		otBand := earnings.BandAmount{Hours: otHours, Earnings: otAmount}
		switch b {
		case BandDay:
			out.Ordinary.Day, out.Overtime.Day = band, otBand
		case BandEvening:
			out.Ordinary.Evening, out.Overtime.Evening = band, otBand
		case BandNight:
			out.Ordinary.Night, out.Overtime.Night = band, otBand
		}
	}

	out.TravelTimeHours = MinutesToHours(travelMin)
	out.TravelTimeEarnings = out.TravelTimeHours.Mul(c.cfg.HourlyRate)

	workedMin := ordinaryMin.Total() + overtimeMin.Total()
	out.TravelAllowance = CalcTravelAllowance(TravelInput{
		Hours:              MinutesToHours(workedMin + travelMin),
		DailyAmount:        c.cfg.TravelDailyAmount,
		HourlyRate:         c.cfg.HourlyRate,
		Policy:             c.cfg.TravelPolicy,
		SpecialPolicy:      c.specialTravelPolicy(out.IsSaturday, out.IsSunday, out.IsHoliday),
		ApplyOnSpecialDays: c.cfg.TravelOnSpecialDays,
		OverrideActive:     rec.TravelOverride,
		OverridePct:        rec.TravelOverridePct,
		IsSaturday:         out.IsSaturday,
		IsSunday:           out.IsSunday,
		IsHoliday:          out.IsHoliday,
		TravelHours:        out.TravelTimeHours,
		DayTypeMult:        dayTypeMult,
	})

	if rec.OnCall {
		out.StandbyIndemnity = CalcStandbyIndemnity(c.cfg, out.IsSaturday, out.IsSunday, out.IsHoliday)
		out.StandbyEarnings = CalcInterventionEarnings(c.rates, c.cfg, dayTypeMult, rec.Interventions)
	}

	out.MealAllowance = CalcMealAllowance(c.cfg, rec)

	out.Total = out.Ordinary.Earnings().
		Add(out.Overtime.Earnings()).
		Add(out.TravelTimeEarnings).
		Add(out.TravelAllowance).
		Add(out.StandbyIndemnity).
		Add(out.StandbyEarnings).
		Add(out.MealAllowance)

	return out, nil
}

func (c *DailyCalculator) specialTravelPolicy(isSaturday, isSunday, isHoliday bool) settings.SpecialTravelPolicy {
	switch {
	case isHoliday:
		return c.cfg.TravelHolidayPolicy
	case isSunday:
		return c.cfg.TravelSundayPolicy
	case isSaturday:
		return c.cfg.TravelSaturdayPolicy
	}
	return settings.TravelPercentageBonus
}

// BareStandbyIndemnity computes the indemnity for an on-call calendar date
// that has no work record at all.
func BareStandbyIndemnity(cfg settings.CalcSettings, date time.Time) decimal.Decimal {
	return CalcStandbyIndemnity(cfg,
		date.Weekday() == time.Saturday,
		date.Weekday() == time.Sunday,
		IsHoliday(date),
	)
}
