package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/oncall"
	"github.com/lavorotracker/paycalc-backend-go/internal/handler/http/middleware"
	"github.com/lavorotracker/paycalc-backend-go/internal/handler/http/response"
)

type OnCallHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	Unmark(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
}

type OnCallHandlerImpl struct {
	calendarService oncall.CalendarService
}

func NewOnCallHandler(calendarService oncall.CalendarService) OnCallHandler {
	return &OnCallHandlerImpl{calendarService: calendarService}
}

// Mark implements OnCallHandler.
func (h *OnCallHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var markReq oncall.MarkDayRequest
	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Mark on-call decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	day, err := h.calendarService.Mark(r.Context(), userID, markReq)
	if err != nil {
		slog.Error("Mark on-call service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "On-call day marked", day)
}

// Unmark implements OnCallHandler.
func (h *OnCallHandlerImpl) Unmark(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.calendarService.Unmark(r.Context(), userID, chi.URLParam(r, "date")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "On-call day unmarked", nil)
}

// ListMonth implements OnCallHandler.
func (h *OnCallHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
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

	days, err := h.calendarService.ListMonth(r.Context(), userID, year, month)
	if err != nil {
		slog.Error("List on-call service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}
