package settings

import (
	"github.com/lavorotracker/paycalc-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest - partial update, nil fields keep the stored value.
type UpdateSettingsRequest struct {
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
	DailyRate  *decimal.Decimal `json:"daily_rate"`

	OvertimeDayMult     *decimal.Decimal `json:"overtime_day_mult"`
	OvertimeEveningMult *decimal.Decimal `json:"overtime_evening_mult"`
	OvertimeNightMult   *decimal.Decimal `json:"overtime_night_mult"`

	SaturdayMult *decimal.Decimal `json:"saturday_mult"`
	SundayMult   *decimal.Decimal `json:"sunday_mult"`
	HolidayMult  *decimal.Decimal `json:"holiday_mult"`

	OvertimeThresholdMinutes *int `json:"overtime_threshold_minutes"`

	TravelPolicy         *string          `json:"travel_policy"`
	TravelDailyAmount    *decimal.Decimal `json:"travel_daily_amount"`
	TravelOnSpecialDays  *bool            `json:"travel_on_special_days"`
	TravelSaturdayPolicy *string          `json:"travel_saturday_policy"`
	TravelSundayPolicy   *string          `json:"travel_sunday_policy"`
	TravelHolidayPolicy  *string          `json:"travel_holiday_policy"`

	StandbyTier         *string          `json:"standby_tier"`
	StandbySaturdayRest *bool            `json:"standby_saturday_rest"`
	StandbyWeekday16    *decimal.Decimal `json:"standby_weekday_16"`
	StandbyWeekday24    *decimal.Decimal `json:"standby_weekday_24"`
	StandbyHoliday      *decimal.Decimal `json:"standby_holiday"`

	MealLunchVoucher  *decimal.Decimal `json:"meal_lunch_voucher"`
	MealDinnerVoucher *decimal.Decimal `json:"meal_dinner_voucher"`
	MealLunchCash     *decimal.Decimal `json:"meal_lunch_cash"`
	MealDinnerCash    *decimal.Decimal `json:"meal_dinner_cash"`

	NetMethod          *string          `json:"net_method"`
	NetFlatRate        *decimal.Decimal `json:"net_flat_rate"`
	BaseMonthlyGross   *decimal.Decimal `json:"base_monthly_gross"`
	NetUseContractBase *bool            `json:"net_use_contract_base"`
}

func (r UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	nonNegative := func(field string, d *decimal.Decimal) {
		if d != nil && d.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must not be negative"})
		}
	}

	nonNegative("hourly_rate", r.HourlyRate)
	nonNegative("daily_rate", r.DailyRate)
	nonNegative("travel_daily_amount", r.TravelDailyAmount)
	nonNegative("standby_weekday_16", r.StandbyWeekday16)
	nonNegative("standby_weekday_24", r.StandbyWeekday24)
	nonNegative("standby_holiday", r.StandbyHoliday)
	nonNegative("meal_lunch_voucher", r.MealLunchVoucher)
	nonNegative("meal_dinner_voucher", r.MealDinnerVoucher)
	nonNegative("meal_lunch_cash", r.MealLunchCash)
	nonNegative("meal_dinner_cash", r.MealDinnerCash)
	nonNegative("base_monthly_gross", r.BaseMonthlyGross)

	if r.OvertimeThresholdMinutes != nil && *r.OvertimeThresholdMinutes <= 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_threshold_minutes", Message: "must be positive"})
	}
	if r.NetFlatRate != nil && !validator.IsValidPercentage(*r.NetFlatRate) {
		errs = append(errs, validator.ValidationError{Field: "net_flat_rate", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SettingsResponse mirrors the stored settings for API consumers.
type SettingsResponse struct {
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	DailyRate  decimal.Decimal `json:"daily_rate"`

	OvertimeDayMult     decimal.Decimal `json:"overtime_day_mult"`
	OvertimeEveningMult decimal.Decimal `json:"overtime_evening_mult"`
	OvertimeNightMult   decimal.Decimal `json:"overtime_night_mult"`

	SaturdayMult decimal.Decimal `json:"saturday_mult"`
	SundayMult   decimal.Decimal `json:"sunday_mult"`
	HolidayMult  decimal.Decimal `json:"holiday_mult"`

	OvertimeThresholdMinutes int `json:"overtime_threshold_minutes"`

	TravelPolicy         string          `json:"travel_policy"`
	TravelDailyAmount    decimal.Decimal `json:"travel_daily_amount"`
	TravelOnSpecialDays  bool            `json:"travel_on_special_days"`
	TravelSaturdayPolicy string          `json:"travel_saturday_policy"`
	TravelSundayPolicy   string          `json:"travel_sunday_policy"`
	TravelHolidayPolicy  string          `json:"travel_holiday_policy"`

	StandbyTier         string          `json:"standby_tier"`
	StandbySaturdayRest bool            `json:"standby_saturday_rest"`
	StandbyWeekday16    decimal.Decimal `json:"standby_weekday_16"`
	StandbyWeekday24    decimal.Decimal `json:"standby_weekday_24"`
	StandbyHoliday      decimal.Decimal `json:"standby_holiday"`

	MealLunchVoucher  decimal.Decimal `json:"meal_lunch_voucher"`
	MealDinnerVoucher decimal.Decimal `json:"meal_dinner_voucher"`
	MealLunchCash     decimal.Decimal `json:"meal_lunch_cash"`
	MealDinnerCash    decimal.Decimal `json:"meal_dinner_cash"`

	NetMethod          string          `json:"net_method"`
	NetFlatRate        decimal.Decimal `json:"net_flat_rate"`
	BaseMonthlyGross   decimal.Decimal `json:"base_monthly_gross"`
	NetUseContractBase bool            `json:"net_use_contract_base"`
}
