package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/lavorotracker/paycalc-backend-go/internal/pkg/database"
)

type CalcSettingsRepository struct {
	db *database.DB
}

func NewCalcSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &CalcSettingsRepository{db: db}
}

const calcSettingsColumns = `
	id, user_id,
	hourly_rate, daily_rate,
	overtime_day_mult, overtime_evening_mult, overtime_night_mult,
	saturday_mult, sunday_mult, holiday_mult,
	overtime_threshold_minutes,
	travel_policy, travel_daily_amount, travel_on_special_days,
	travel_saturday_policy, travel_sunday_policy, travel_holiday_policy,
	standby_tier, standby_saturday_rest,
	standby_weekday_16, standby_weekday_24, standby_holiday,
	meal_lunch_voucher, meal_dinner_voucher, meal_lunch_cash, meal_dinner_cash,
	net_method, net_flat_rate, base_monthly_gross, net_use_contract_base,
	created_at, updated_at`

// GetByUserID implements settings.SettingsRepository.
func (r *CalcSettingsRepository) GetByUserID(ctx context.Context, userID string) (settings.CalcSettings, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + calcSettingsColumns + `
		FROM calc_settings
		WHERE user_id = $1`

	s, err := scanCalcSettings(querier.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.CalcSettings{}, settings.ErrSettingsNotFound
		}
		return settings.CalcSettings{}, fmt.Errorf("failed to get calc settings: %w", err)
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *CalcSettingsRepository) Upsert(ctx context.Context, s settings.CalcSettings) (settings.CalcSettings, error) {
	querier := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO calc_settings (
			id, user_id,
			hourly_rate, daily_rate,
			overtime_day_mult, overtime_evening_mult, overtime_night_mult,
			saturday_mult, sunday_mult, holiday_mult,
			overtime_threshold_minutes,
			travel_policy, travel_daily_amount, travel_on_special_days,
			travel_saturday_policy, travel_sunday_policy, travel_holiday_policy,
			standby_tier, standby_saturday_rest,
			standby_weekday_16, standby_weekday_24, standby_holiday,
			meal_lunch_voucher, meal_dinner_voucher, meal_lunch_cash, meal_dinner_cash,
			net_method, net_flat_rate, base_monthly_gross, net_use_contract_base
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30
		)
		ON CONFLICT (user_id) DO UPDATE SET
			hourly_rate = EXCLUDED.hourly_rate,
			daily_rate = EXCLUDED.daily_rate,
			overtime_day_mult = EXCLUDED.overtime_day_mult,
			overtime_evening_mult = EXCLUDED.overtime_evening_mult,
			overtime_night_mult = EXCLUDED.overtime_night_mult,
			saturday_mult = EXCLUDED.saturday_mult,
			sunday_mult = EXCLUDED.sunday_mult,
			holiday_mult = EXCLUDED.holiday_mult,
			overtime_threshold_minutes = EXCLUDED.overtime_threshold_minutes,
			travel_policy = EXCLUDED.travel_policy,
			travel_daily_amount = EXCLUDED.travel_daily_amount,
			travel_on_special_days = EXCLUDED.travel_on_special_days,
			travel_saturday_policy = EXCLUDED.travel_saturday_policy,
			travel_sunday_policy = EXCLUDED.travel_sunday_policy,
			travel_holiday_policy = EXCLUDED.travel_holiday_policy,
			standby_tier = EXCLUDED.standby_tier,
			standby_saturday_rest = EXCLUDED.standby_saturday_rest,
			standby_weekday_16 = EXCLUDED.standby_weekday_16,
			standby_weekday_24 = EXCLUDED.standby_weekday_24,
			standby_holiday = EXCLUDED.standby_holiday,
			meal_lunch_voucher = EXCLUDED.meal_lunch_voucher,
			meal_dinner_voucher = EXCLUDED.meal_dinner_voucher,
			meal_lunch_cash = EXCLUDED.meal_lunch_cash,
			meal_dinner_cash = EXCLUDED.meal_dinner_cash,
			net_method = EXCLUDED.net_method,
			net_flat_rate = EXCLUDED.net_flat_rate,
			base_monthly_gross = EXCLUDED.base_monthly_gross,
			net_use_contract_base = EXCLUDED.net_use_contract_base,
			updated_at = NOW()
		RETURNING ` + calcSettingsColumns

	saved, err := scanCalcSettings(querier.QueryRow(ctx, query,
		s.ID, s.UserID,
		s.HourlyRate, s.DailyRate,
		s.OvertimeDayMult, s.OvertimeEveningMult, s.OvertimeNightMult,
		s.SaturdayMult, s.SundayMult, s.HolidayMult,
		s.OvertimeThresholdMinutes,
		string(s.TravelPolicy), s.TravelDailyAmount, s.TravelOnSpecialDays,
		string(s.TravelSaturdayPolicy), string(s.TravelSundayPolicy), string(s.TravelHolidayPolicy),
		string(s.StandbyTier), s.StandbySaturdayRest,
		s.StandbyWeekday16, s.StandbyWeekday24, s.StandbyHoliday,
		s.MealLunchVoucher, s.MealDinnerVoucher, s.MealLunchCash, s.MealDinnerCash,
		string(s.NetMethod), s.NetFlatRate, s.BaseMonthlyGross, s.NetUseContractBase,
	))
	if err != nil {
		return settings.CalcSettings{}, fmt.Errorf("failed to upsert calc settings: %w", err)
	}

	return saved, nil
}

func scanCalcSettings(row pgx.Row) (settings.CalcSettings, error) {
	var (
		s                                    settings.CalcSettings
		travelPolicy, standbyTier, netMethod string
		travelSatPolicy                      string
		travelSunPolicy                      string
		travelHolPolicy                      string
	)

	err := row.Scan(
		&s.ID, &s.UserID,
		&s.HourlyRate, &s.DailyRate,
		&s.OvertimeDayMult, &s.OvertimeEveningMult, &s.OvertimeNightMult,
		&s.SaturdayMult, &s.SundayMult, &s.HolidayMult,
		&s.OvertimeThresholdMinutes,
		&travelPolicy, &s.TravelDailyAmount, &s.TravelOnSpecialDays,
		&travelSatPolicy, &travelSunPolicy, &travelHolPolicy,
		&standbyTier, &s.StandbySaturdayRest,
		&s.StandbyWeekday16, &s.StandbyWeekday24, &s.StandbyHoliday,
		&s.MealLunchVoucher, &s.MealDinnerVoucher, &s.MealLunchCash, &s.MealDinnerCash,
		&netMethod, &s.NetFlatRate, &s.BaseMonthlyGross, &s.NetUseContractBase,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return settings.CalcSettings{}, err
	}

	// Stored enum values degrade to defaults rather than failing the read.
	s.TravelPolicy = settings.ParseTravelPolicy(travelPolicy)
	s.TravelSaturdayPolicy = settings.ParseSpecialTravelPolicy(travelSatPolicy)
	s.TravelSundayPolicy = settings.ParseSpecialTravelPolicy(travelSunPolicy)
	s.TravelHolidayPolicy = settings.ParseSpecialTravelPolicy(travelHolPolicy)
	s.StandbyTier = settings.ParseStandbyTier(standbyTier)
	s.NetMethod = settings.ParseNetMethod(netMethod)

	return s, nil
}
