package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/lavorotracker/paycalc-backend-go/internal/domain/earnings"
	"github.com/lavorotracker/paycalc-backend-go/internal/handler/http/middleware"
	"github.com/lavorotracker/paycalc-backend-go/internal/handler/http/response"
	"github.com/shopspring/decimal"
)

type EarningsHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	EstimateNet(w http.ResponseWriter, r *http.Request)
}

type EarningsHandlerImpl struct {
	earningsService earnings.EarningsService
}

func NewEarningsHandler(earningsService earnings.EarningsService) EarningsHandler {
	return &EarningsHandlerImpl{earningsService: earningsService}
}

// Daily implements EarningsHandler.
func (h *EarningsHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "date query parameter must be in YYYY-MM-DD format", nil)
		return
	}

	breakdown, err := h.earningsService.DailyBreakdown(r.Context(), userID, date)
	if err != nil {
		slog.Error("Daily breakdown service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, breakdown)
}

// Monthly implements EarningsHandler.
func (h *EarningsHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	year, month, ok := monthQuery(r)
	if !ok {
		response.BadRequest(w, "year and month query parameters are required", nil)
		return
	}

	summary, err := h.earningsService.MonthlySummary(r.Context(), userID, year, month)
	if err != nil {
		slog.Error("Monthly summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

type estimateNetRequest struct {
	Gross decimal.Decimal `json:"gross"`
}

// EstimateNet implements EarningsHandler.
func (h *EarningsHandlerImpl) EstimateNet(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var estimateReq estimateNetRequest
	if err := json.NewDecoder(r.Body).Decode(&estimateReq); err != nil {
		slog.Error("Estimate net decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if estimateReq.Gross.IsNegative() {
		response.BadRequest(w, "gross must not be negative", nil)
		return
	}

	result, err := h.earningsService.EstimateNet(r.Context(), userID, estimateReq.Gross)
	if err != nil {
		slog.Error("Estimate net service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
