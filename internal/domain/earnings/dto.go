package earnings

import (
	"time"

	"github.com/shopspring/decimal"
)

// BandAmount - hours and earnings attributed to one time-of-day band.
type BandAmount struct {
	Hours    decimal.Decimal `json:"hours"`
	Earnings decimal.Decimal `json:"earnings"`
}

// Bands groups the three time-of-day bands of the rate table.
type Bands struct {
	Day     BandAmount `json:"day"`
	Evening BandAmount `json:"evening"`
	Night   BandAmount `json:"night"`
}

func (b Bands) Hours() decimal.Decimal {
	return b.Day.Hours.Add(b.Evening.Hours).Add(b.Night.Hours)
}

func (b Bands) Earnings() decimal.Decimal {
	return b.Day.Earnings.Add(b.Evening.Earnings).Add(b.Night.Earnings)
}

// DailyBreakdown - the itemized result for one calendar day. It is a pure
// projection of a work record and the active settings: recomputed on demand,
// never persisted, and each line item is counted in Total exactly once.
type DailyBreakdown struct {
	Date       time.Time `json:"date"`
	Kind       string    `json:"kind"`
	IsSaturday bool      `json:"is_saturday"`
	IsSunday   bool      `json:"is_sunday"`
	IsHoliday  bool      `json:"is_holiday"`

	// Worked time within the daily overtime threshold.
	Ordinary Bands `json:"ordinary"`
	// Worked time beyond the threshold, paid at overtime multipliers.
	Overtime Bands `json:"overtime"`

	// Travel legs, paid at the base hourly rate.
	TravelTimeHours    decimal.Decimal `json:"travel_time_hours"`
	TravelTimeEarnings decimal.Decimal `json:"travel_time_earnings"`

	TravelAllowance decimal.Decimal `json:"travel_allowance"`

	StandbyIndemnity decimal.Decimal `json:"standby_indemnity"`
	StandbyEarnings  decimal.Decimal `json:"standby_earnings"`

	MealAllowance decimal.Decimal `json:"meal_allowance"`

	// FixedPay is the flat daily rate paid for non-ordinary day kinds
	// (vacation, sick, compensatory rest, paid holiday, fixed pay).
	FixedPay decimal.Decimal `json:"fixed_pay"`

	Total decimal.Decimal `json:"total"`
}

// OrdinaryTotal - ordinary-category earnings: within-threshold work plus
// travel-leg time pay.
func (d DailyBreakdown) OrdinaryTotal() decimal.Decimal {
	return d.Ordinary.Earnings().Add(d.TravelTimeEarnings)
}

// NightHours - hours attributed to the night band across ordinary and
// overtime work.
func (d DailyBreakdown) NightHours() decimal.Decimal {
	return d.Ordinary.Night.Hours.Add(d.Overtime.Night.Hours)
}

// WorkedHours - total hours worked across both threshold sides.
func (d DailyBreakdown) WorkedHours() decimal.Decimal {
	return d.Ordinary.Hours().Add(d.Overtime.Hours())
}

// MonthlyAggregate - category totals plus derived analytics for one month.
type MonthlyAggregate struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	DaysRecorded    int `json:"days_recorded"`
	BareStandbyDays int `json:"bare_standby_days"`

	OrdinaryHours decimal.Decimal `json:"ordinary_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	NightHours    decimal.Decimal `json:"night_hours"`

	OrdinaryTotal        decimal.Decimal `json:"ordinary_total"`
	OvertimeTotal        decimal.Decimal `json:"overtime_total"`
	TravelAllowanceTotal decimal.Decimal `json:"travel_allowance_total"`
	StandbyIndemnity     decimal.Decimal `json:"standby_indemnity_total"`
	StandbyEarnings      decimal.Decimal `json:"standby_earnings_total"`
	MealAllowanceTotal   decimal.Decimal `json:"meal_allowance_total"`
	FixedPayTotal        decimal.Decimal `json:"fixed_pay_total"`

	Total decimal.Decimal `json:"total"`

	// Percentage shares of the grand total per category; zero when the
	// grand total is zero.
	OrdinaryShare decimal.Decimal `json:"ordinary_share"`
	OvertimeShare decimal.Decimal `json:"overtime_share"`
	TravelShare   decimal.Decimal `json:"travel_share"`
	StandbyShare  decimal.Decimal `json:"standby_share"`

	WeekendWorkDays int `json:"weekend_work_days"`
}

// NetIncomeResult - gross-to-net estimate.
type NetIncomeResult struct {
	Gross         decimal.Decimal `json:"gross"`
	Net           decimal.Decimal `json:"net"`
	Deductions    decimal.Decimal `json:"deductions"`
	DeductionRate decimal.Decimal `json:"deduction_rate"`
	Method        string          `json:"method"`
}
