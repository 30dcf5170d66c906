package oncall

import "github.com/lavorotracker/paycalc-backend-go/internal/pkg/validator"

type MarkDayRequest struct {
	Date string `json:"date"`
}

func (r MarkDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}
