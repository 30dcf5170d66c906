package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

// TravelPolicy enum - weekday travel allowance policies
type TravelPolicy string

const (
	TravelFixedRate         TravelPolicy = "fixed_rate"
	TravelHalfAllowanceHalf TravelPolicy = "half_allowance_half_day"
	TravelFullAllowanceHalf TravelPolicy = "full_allowance_half_day"
	TravelProportionalCCNL  TravelPolicy = "proportional_ccnl"
)

// ParseTravelPolicy falls back to fixed_rate for unrecognized values.
func ParseTravelPolicy(s string) TravelPolicy {
	switch TravelPolicy(s) {
	case TravelFixedRate, TravelHalfAllowanceHalf, TravelFullAllowanceHalf, TravelProportionalCCNL:
		return TravelPolicy(s)
	}
	return TravelFixedRate
}

// SpecialTravelPolicy enum - travel policies selectable per special day type
type SpecialTravelPolicy string

const (
	TravelWorkRate        SpecialTravelPolicy = "work_rate"
	TravelPercentageBonus SpecialTravelPolicy = "percentage_bonus"
)

func ParseSpecialTravelPolicy(s string) SpecialTravelPolicy {
	switch SpecialTravelPolicy(s) {
	case TravelWorkRate, TravelPercentageBonus:
		return SpecialTravelPolicy(s)
	}
	return TravelPercentageBonus
}

// StandbyTier enum - on-call coverage window
type StandbyTier string

const (
	StandbyTier16 StandbyTier = "16h"
	StandbyTier24 StandbyTier = "24h"
)

func ParseStandbyTier(s string) StandbyTier {
	switch StandbyTier(s) {
	case StandbyTier16, StandbyTier24:
		return StandbyTier(s)
	}
	return StandbyTier24
}

// NetMethod enum - gross-to-net estimation method
type NetMethod string

const (
	NetProgressive NetMethod = "progressive"
	NetFlat        NetMethod = "flat"
)

func ParseNetMethod(s string) NetMethod {
	switch NetMethod(s) {
	case NetProgressive, NetFlat:
		return NetMethod(s)
	}
	return NetProgressive
}

// CalcSettings - per-user CCNL calculation configuration.
// The engine treats it as immutable; every calculator receives it by value
// or by read-only reference and never writes to it.
type CalcSettings struct {
	ID     string
	UserID string

	HourlyRate decimal.Decimal
	DailyRate  decimal.Decimal

	OvertimeDayMult     decimal.Decimal
	OvertimeEveningMult decimal.Decimal
	OvertimeNightMult   decimal.Decimal

	SaturdayMult decimal.Decimal
	SundayMult   decimal.Decimal
	HolidayMult  decimal.Decimal

	OvertimeThresholdMinutes int

	TravelPolicy         TravelPolicy
	TravelDailyAmount    decimal.Decimal
	TravelOnSpecialDays  bool
	TravelSaturdayPolicy SpecialTravelPolicy
	TravelSundayPolicy   SpecialTravelPolicy
	TravelHolidayPolicy  SpecialTravelPolicy

	StandbyTier         StandbyTier
	StandbySaturdayRest bool
	StandbyWeekday16    *decimal.Decimal
	StandbyWeekday24    *decimal.Decimal
	StandbyHoliday      *decimal.Decimal

	MealLunchVoucher  decimal.Decimal
	MealDinnerVoucher decimal.Decimal
	MealLunchCash     decimal.Decimal
	MealDinnerCash    decimal.Decimal

	NetMethod          NetMethod
	NetFlatRate        decimal.Decimal
	BaseMonthlyGross   decimal.Decimal
	NetUseContractBase bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contractual defaults, substituted field-by-field when a stored value is absent.
var (
	DefaultHourlyRate          = decimal.RequireFromString("9.87")
	DefaultDailyRate           = decimal.RequireFromString("78.96")
	DefaultOvertimeDayMult     = decimal.RequireFromString("1.20")
	DefaultOvertimeEveningMult = decimal.RequireFromString("1.25")
	DefaultOvertimeNightMult   = decimal.RequireFromString("1.35")
	DefaultSaturdayMult        = decimal.RequireFromString("1.25")
	DefaultSundayMult          = decimal.RequireFromString("1.30")
	DefaultHolidayMult         = decimal.RequireFromString("1.30")
	DefaultTravelDailyAmount   = decimal.RequireFromString("16.41")

	// Flat daily on-call indemnities from the contractual table.
	DefaultStandbyWeekday16 = decimal.RequireFromString("4.89")
	DefaultStandbyWeekday24 = decimal.RequireFromString("7.03")
	DefaultStandbyHoliday   = decimal.RequireFromString("10.25")

	DefaultMealVoucher = decimal.RequireFromString("7.00")
	DefaultMealCash    = decimal.RequireFromString("5.29")

	DefaultNetFlatRate = decimal.RequireFromString("27.0")
)

const DefaultOvertimeThresholdMinutes = 8 * 60

// Defaults returns a fully populated settings object for users that have
// never saved one. Missing-configuration is never an error in this system.
func Defaults(userID string) CalcSettings {
	return CalcSettings{
		UserID:                   userID,
		HourlyRate:               DefaultHourlyRate,
		DailyRate:                DefaultDailyRate,
		OvertimeDayMult:          DefaultOvertimeDayMult,
		OvertimeEveningMult:      DefaultOvertimeEveningMult,
		OvertimeNightMult:        DefaultOvertimeNightMult,
		SaturdayMult:             DefaultSaturdayMult,
		SundayMult:               DefaultSundayMult,
		HolidayMult:              DefaultHolidayMult,
		OvertimeThresholdMinutes: DefaultOvertimeThresholdMinutes,
		TravelPolicy:             TravelFixedRate,
		TravelDailyAmount:        DefaultTravelDailyAmount,
		TravelOnSpecialDays:      false,
		TravelSaturdayPolicy:     TravelPercentageBonus,
		TravelSundayPolicy:       TravelPercentageBonus,
		TravelHolidayPolicy:      TravelPercentageBonus,
		StandbyTier:              StandbyTier24,
		StandbySaturdayRest:      false,
		MealLunchVoucher:         DefaultMealVoucher,
		MealDinnerVoucher:        DefaultMealVoucher,
		MealLunchCash:            DefaultMealCash,
		MealDinnerCash:           DefaultMealCash,
		NetMethod:                NetProgressive,
		NetFlatRate:              DefaultNetFlatRate,
		BaseMonthlyGross:         decimal.Zero,
		NetUseContractBase:       false,
	}
}

// StandbyWeekday16Amount resolves the custom override or the contractual default.
func (s CalcSettings) StandbyWeekday16Amount() decimal.Decimal {
	if s.StandbyWeekday16 != nil {
		return *s.StandbyWeekday16
	}
	return DefaultStandbyWeekday16
}

func (s CalcSettings) StandbyWeekday24Amount() decimal.Decimal {
	if s.StandbyWeekday24 != nil {
		return *s.StandbyWeekday24
	}
	return DefaultStandbyWeekday24
}

func (s CalcSettings) StandbyHolidayAmount() decimal.Decimal {
	if s.StandbyHoliday != nil {
		return *s.StandbyHoliday
	}
	return DefaultStandbyHoliday
}
