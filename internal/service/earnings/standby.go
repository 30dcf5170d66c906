package earnings

import (
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// CalcStandbyIndemnity selects the flat daily on-call amount from the
// coverage-tier x day-kind matrix, honoring per-tier custom overrides.
// Whether Saturday falls in the rest-day bucket is its own setting,
// independent of the travel-allowance Saturday rule.
func CalcStandbyIndemnity(cfg settings.CalcSettings, isSaturday, isSunday, isHoliday bool) decimal.Decimal {
	restDay := isSunday || isHoliday || (isSaturday && cfg.StandbySaturdayRest)
	if restDay {
		return cfg.StandbyHolidayAmount()
	}
	if cfg.StandbyTier == settings.StandbyTier16 {
		return cfg.StandbyWeekday16Amount()
	}
	return cfg.StandbyWeekday24Amount()
}

// CalcInterventionEarnings pays on-call intervention episodes. Work segments
// are always ordinary-rate work, by contractual definition, no matter how
// many hours were already worked that day: band-split minutes at the ordinary
// rate table with the day-type multiplier competing by MAX. Travel segments
// are paid like any other travel leg, at the base hourly rate.
func CalcInterventionEarnings(rt RateTable, cfg settings.CalcSettings, dayTypeMult decimal.Decimal, interventions []timesheet.Intervention) decimal.Decimal {
	total := decimal.Zero

	for _, iv := range interventions {
		for _, seg := range [...][2]string{
			{iv.WorkStart1, iv.WorkEnd1},
			{iv.WorkStart2, iv.WorkEnd2},
		} {
			start, ok := ParseClock(seg[0])
			if !ok {
				continue
			}
			dur := Duration(seg[0], seg[1])
			bands := SplitBands(start, dur)
			for b := BandDay; b <= BandNight; b++ {
				if bands[b] == 0 {
					continue
				}
				hours := MinutesToHours(bands[b])
				total = total.Add(hours.Mul(cfg.HourlyRate).Mul(rt.OrdinaryMultiplier(b, dayTypeMult)))
			}
		}

		travelMinutes := Duration(iv.TravelStart1, iv.TravelEnd1) + Duration(iv.TravelStart2, iv.TravelEnd2)
		if travelMinutes > 0 {
			total = total.Add(MinutesToHours(travelMinutes).Mul(cfg.HourlyRate))
		}
	}

	return total
}
