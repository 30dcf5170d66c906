package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayKind enum
type DayKind string

const (
	DayOrdinary         DayKind = "ordinary"
	DayVacation         DayKind = "vacation"
	DaySick             DayKind = "sick"
	DayCompensatoryRest DayKind = "compensatory_rest"
	DayPaidHoliday      DayKind = "paid_holiday"
	DayFixedPay         DayKind = "fixed_pay"
)

// ParseDayKind falls back to ordinary for unrecognized values.
func ParseDayKind(s string) DayKind {
	switch DayKind(s) {
	case DayOrdinary, DayVacation, DaySick, DayCompensatoryRest, DayPaidHoliday, DayFixedPay:
		return DayKind(s)
	}
	return DayOrdinary
}

// IsFixedPay reports whether the kind short-circuits to the configured daily
// rate with all time fields ignored.
func (k DayKind) IsFixedPay() bool {
	return k != DayOrdinary
}

// Intervention - one on-call work+travel episode. Each segment pair may cross
// midnight independently: an end clock numerically before its start clock
// signals roll-over, never a negative duration.
type Intervention struct {
	WorkStart1   string `json:"work_start_1"`
	WorkEnd1     string `json:"work_end_1"`
	WorkStart2   string `json:"work_start_2"`
	WorkEnd2     string `json:"work_end_2"`
	TravelStart1 string `json:"travel_start_1"`
	TravelEnd1   string `json:"travel_end_1"`
	TravelStart2 string `json:"travel_start_2"`
	TravelEnd2   string `json:"travel_end_2"`
}

// WorkRecord - one calendar day of the timesheet.
type WorkRecord struct {
	ID     string
	UserID string
	Date   time.Time
	Kind   DayKind

	// Up to two work intervals (split shift) and two travel legs
	// (company to site, site back to company). Empty string means absent.
	WorkStart1   string
	WorkEnd1     string
	WorkStart2   string
	WorkEnd2     string
	TravelStart1 string
	TravelEnd1   string
	TravelStart2 string
	TravelEnd2   string

	OnCall        bool
	Interventions []Intervention

	LunchVoucher  bool
	DinnerVoucher bool
	LunchCash     bool
	DinnerCash    bool

	TravelOverride    bool
	TravelOverridePct decimal.Decimal

	Note *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
