package response

import (
	"errors"
	"net/http"

	"github.com/lavorotracker/paycalc-backend-go/internal/domain/auth"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/oncall"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/timesheet"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/user"
	"github.com/lavorotracker/paycalc-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrRecordNotFound):
		NotFound(w, "Work record not found")
	case errors.Is(err, timesheet.ErrRecordExists):
		Conflict(w, "A work record already exists for this date")
	case errors.Is(err, timesheet.ErrMissingDate):
		BadRequest(w, "Work record date is required", nil)

	// On-call calendar errors
	case errors.Is(err, oncall.ErrDayNotFound):
		NotFound(w, "On-call day not found")

	// Settings errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
