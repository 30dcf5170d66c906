package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/lavorotracker/paycalc-backend-go/internal/handler/http/middleware"
	"github.com/lavorotracker/paycalc-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

// Get implements SettingsHandler. Users that never saved settings get the
// contractual defaults.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	s, err := h.settingsService.Get(r.Context(), userID)
	if err != nil {
		slog.Error("Get settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, toSettingsResponse(s))
}

// Update implements SettingsHandler.
func (h *SettingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq settings.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	s, err := h.settingsService.Update(r.Context(), userID, updateReq)
	if err != nil {
		slog.Error("Update settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", toSettingsResponse(s))
}

func toSettingsResponse(s settings.CalcSettings) settings.SettingsResponse {
	return settings.SettingsResponse{
		HourlyRate:               s.HourlyRate,
		DailyRate:                s.DailyRate,
		OvertimeDayMult:          s.OvertimeDayMult,
		OvertimeEveningMult:      s.OvertimeEveningMult,
		OvertimeNightMult:        s.OvertimeNightMult,
		SaturdayMult:             s.SaturdayMult,
		SundayMult:               s.SundayMult,
		HolidayMult:              s.HolidayMult,
		OvertimeThresholdMinutes: s.OvertimeThresholdMinutes,
		TravelPolicy:             string(s.TravelPolicy),
		TravelDailyAmount:        s.TravelDailyAmount,
		TravelOnSpecialDays:      s.TravelOnSpecialDays,
		TravelSaturdayPolicy:     string(s.TravelSaturdayPolicy),
		TravelSundayPolicy:       string(s.TravelSundayPolicy),
		TravelHolidayPolicy:      string(s.TravelHolidayPolicy),
		StandbyTier:              string(s.StandbyTier),
		StandbySaturdayRest:      s.StandbySaturdayRest,
		StandbyWeekday16:         s.StandbyWeekday16Amount(),
		StandbyWeekday24:         s.StandbyWeekday24Amount(),
		StandbyHoliday:           s.StandbyHolidayAmount(),
		MealLunchVoucher:         s.MealLunchVoucher,
		MealDinnerVoucher:        s.MealDinnerVoucher,
		MealLunchCash:            s.MealLunchCash,
		MealDinnerCash:           s.MealDinnerCash,
		NetMethod:                string(s.NetMethod),
		NetFlatRate:              s.NetFlatRate,
		BaseMonthlyGross:         s.BaseMonthlyGross,
		NetUseContractBase:       s.NetUseContractBase,
	}
}
