package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/timesheet"
	"github.com/lavorotracker/paycalc-backend-go/internal/handler/http/middleware"
	"github.com/lavorotracker/paycalc-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	Save(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// Save implements TimesheetHandler. One record per user per date: saving a
// date that already has a record replaces it.
func (h *TimesheetHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var saveReq timesheet.SaveRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.timesheetService.Save(r.Context(), userID, saveReq)
	if err != nil {
		slog.Error("Save record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Get implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.timesheetService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// ListMonth implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
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

	records, err := h.timesheetService.ListMonth(r.Context(), userID, year, month)
	if err != nil {
		slog.Error("List records service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Delete implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.timesheetService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work record deleted", nil)
}

// monthQuery parses the year and month query parameters shared by the
// month-scoped endpoints.
func monthQuery(r *http.Request) (int, time.Month, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		return 0, 0, false
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}

	return year, time.Month(month), true
}
