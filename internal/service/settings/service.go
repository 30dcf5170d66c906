package settings

import (
	"context"
	"errors"

	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context, userID string) (settings.CalcSettings, error) {
	cfg, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Defaults(userID), nil
		}
		return settings.CalcSettings{}, err
	}
	return cfg, nil
}

// Update implements settings.SettingsService. Nil request fields keep the
// stored value; enum fields degrade to their documented default when the
// incoming value is unrecognized.
func (s *SettingsServiceImpl) Update(ctx context.Context, userID string, req settings.UpdateSettingsRequest) (settings.CalcSettings, error) {
	if err := req.Validate(); err != nil {
		return settings.CalcSettings{}, err
	}

	current, err := s.Get(ctx, userID)
	if err != nil {
		return settings.CalcSettings{}, err
	}

	if req.HourlyRate != nil {
		current.HourlyRate = *req.HourlyRate
	}
	if req.DailyRate != nil {
		current.DailyRate = *req.DailyRate
	}
	if req.OvertimeDayMult != nil {
		current.OvertimeDayMult = *req.OvertimeDayMult
	}
	if req.OvertimeEveningMult != nil {
		current.OvertimeEveningMult = *req.OvertimeEveningMult
	}
	if req.OvertimeNightMult != nil {
		current.OvertimeNightMult = *req.OvertimeNightMult
	}
	if req.SaturdayMult != nil {
		current.SaturdayMult = *req.SaturdayMult
	}
	if req.SundayMult != nil {
		current.SundayMult = *req.SundayMult
	}
	if req.HolidayMult != nil {
		current.HolidayMult = *req.HolidayMult
	}
	if req.OvertimeThresholdMinutes != nil {
		current.OvertimeThresholdMinutes = *req.OvertimeThresholdMinutes
	}
	if req.TravelPolicy != nil {
		current.TravelPolicy = settings.ParseTravelPolicy(*req.TravelPolicy)
	}
	if req.TravelDailyAmount != nil {
		current.TravelDailyAmount = *req.TravelDailyAmount
	}
	if req.TravelOnSpecialDays != nil {
		current.TravelOnSpecialDays = *req.TravelOnSpecialDays
	}
	if req.TravelSaturdayPolicy != nil {
		current.TravelSaturdayPolicy = settings.ParseSpecialTravelPolicy(*req.TravelSaturdayPolicy)
	}
	if req.TravelSundayPolicy != nil {
		current.TravelSundayPolicy = settings.ParseSpecialTravelPolicy(*req.TravelSundayPolicy)
	}
	if req.TravelHolidayPolicy != nil {
		current.TravelHolidayPolicy = settings.ParseSpecialTravelPolicy(*req.TravelHolidayPolicy)
	}
	if req.StandbyTier != nil {
		current.StandbyTier = settings.ParseStandbyTier(*req.StandbyTier)
	}
	if req.StandbySaturdayRest != nil {
		current.StandbySaturdayRest = *req.StandbySaturdayRest
	}
	if req.StandbyWeekday16 != nil {
		current.StandbyWeekday16 = req.StandbyWeekday16
	}
	if req.StandbyWeekday24 != nil {
		current.StandbyWeekday24 = req.StandbyWeekday24
	}
	if req.StandbyHoliday != nil {
		current.StandbyHoliday = req.StandbyHoliday
	}
	if req.MealLunchVoucher != nil {
		current.MealLunchVoucher = *req.MealLunchVoucher
	}
	if req.MealDinnerVoucher != nil {
		current.MealDinnerVoucher = *req.MealDinnerVoucher
	}
	if req.MealLunchCash != nil {
		current.MealLunchCash = *req.MealLunchCash
	}
	if req.MealDinnerCash != nil {
		current.MealDinnerCash = *req.MealDinnerCash
	}
	if req.NetMethod != nil {
		current.NetMethod = settings.ParseNetMethod(*req.NetMethod)
	}
	if req.NetFlatRate != nil {
		current.NetFlatRate = *req.NetFlatRate
	}
	if req.BaseMonthlyGross != nil {
		current.BaseMonthlyGross = *req.BaseMonthlyGross
	}
	if req.NetUseContractBase != nil {
		current.NetUseContractBase = *req.NetUseContractBase
	}

	current.UserID = userID
	return s.settingsRepo.Upsert(ctx, current)
}
