package earnings

import (
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/shopspring/decimal"
)

var (
	two     = decimal.NewFromInt(2)
	fullDay = decimal.NewFromInt(8)
	one     = decimal.NewFromInt(1)
)

// TravelInput - everything the travel allowance depends on, passed explicitly.
type TravelInput struct {
	// Hours is the day's total worked+traveled ordinary hours.
	Hours decimal.Decimal

	DailyAmount decimal.Decimal
	HourlyRate  decimal.Decimal

	Policy             settings.TravelPolicy
	SpecialPolicy      settings.SpecialTravelPolicy
	ApplyOnSpecialDays bool

	OverrideActive bool
	OverridePct    decimal.Decimal

	IsSaturday bool
	IsSunday   bool
	IsHoliday  bool

	// TravelHours are the hours actually spent on travel legs, paid at the
	// work rate under the WORK_RATE special-day policy.
	TravelHours decimal.Decimal

	DayTypeMult decimal.Decimal
}

// CalcTravelAllowance computes the fixed daily travel indemnity.
//
// Exactly one policy is ever applied. Under PROPORTIONAL_CCNL the per-record
// override percentage is forced to 1.0: the proportional result is already
// scaled by hours and must never be scaled again.
func CalcTravelAllowance(in TravelInput) decimal.Decimal {
	if !in.Hours.IsPositive() && !in.OverrideActive {
		return decimal.Zero
	}
	// Sunday/holiday need the special-day setting or an override to activate.
	// Saturday is always evaluated as an ordinary weekday here, whatever pay
	// multiplier it carries elsewhere.
	if (in.IsSunday || in.IsHoliday) && !in.ApplyOnSpecialDays && !in.OverrideActive {
		return decimal.Zero
	}

	if in.IsSaturday || in.IsSunday || in.IsHoliday {
		switch in.SpecialPolicy {
		case settings.TravelWorkRate:
			return in.TravelHours.Mul(in.HourlyRate).Mul(in.DayTypeMult)
		default:
			return in.DailyAmount.Mul(in.DayTypeMult)
		}
	}

	override := one
	if in.OverrideActive && in.OverridePct.IsPositive() {
		override = in.OverridePct
	}

	switch in.Policy {
	case settings.TravelProportionalCCNL:
		share := in.Hours.Div(fullDay)
		if share.GreaterThan(one) {
			share = one
		}
		return in.DailyAmount.Mul(share)
	case settings.TravelHalfAllowanceHalf:
		if in.Hours.LessThan(fullDay) {
			return in.DailyAmount.Div(two).Mul(override)
		}
		return in.DailyAmount.Mul(override)
	case settings.TravelFullAllowanceHalf:
		return in.DailyAmount.Mul(override)
	default: // fixed_rate, and the fallback for unrecognized selections
		return in.DailyAmount.Mul(override)
	}
}
