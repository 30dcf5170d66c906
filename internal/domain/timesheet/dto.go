package timesheet

import (
	"github.com/lavorotracker/paycalc-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type InterventionPayload struct {
	WorkStart1   string `json:"work_start_1"`
	WorkEnd1     string `json:"work_end_1"`
	WorkStart2   string `json:"work_start_2"`
	WorkEnd2     string `json:"work_end_2"`
	TravelStart1 string `json:"travel_start_1"`
	TravelEnd1   string `json:"travel_end_1"`
	TravelStart2 string `json:"travel_start_2"`
	TravelEnd2   string `json:"travel_end_2"`
}

type SaveRecordRequest struct {
	Date string `json:"date"`
	Kind string `json:"kind"`

	WorkStart1   string `json:"work_start_1"`
	WorkEnd1     string `json:"work_end_1"`
	WorkStart2   string `json:"work_start_2"`
	WorkEnd2     string `json:"work_end_2"`
	TravelStart1 string `json:"travel_start_1"`
	TravelEnd1   string `json:"travel_end_1"`
	TravelStart2 string `json:"travel_start_2"`
	TravelEnd2   string `json:"travel_end_2"`

	OnCall        bool                  `json:"on_call"`
	Interventions []InterventionPayload `json:"interventions"`

	LunchVoucher  bool `json:"lunch_voucher"`
	DinnerVoucher bool `json:"dinner_voucher"`
	LunchCash     bool `json:"lunch_cash"`
	DinnerCash    bool `json:"dinner_cash"`

	TravelOverride    bool             `json:"travel_override"`
	TravelOverridePct *decimal.Decimal `json:"travel_override_pct"`

	Note *string `json:"note"`
}

// Validate rejects only what the engine cannot recover from: a missing or
// unparseable date. Malformed clock strings are accepted and degrade to zero
// minutes downstream.
func (r SaveRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}

	if r.TravelOverridePct != nil {
		pct := *r.TravelOverridePct
		if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(1)) {
			errs = append(errs, validator.ValidationError{Field: "travel_override_pct", Message: "must be between 0 and 1"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Kind string `json:"kind"`

	WorkStart1   string `json:"work_start_1,omitempty"`
	WorkEnd1     string `json:"work_end_1,omitempty"`
	WorkStart2   string `json:"work_start_2,omitempty"`
	WorkEnd2     string `json:"work_end_2,omitempty"`
	TravelStart1 string `json:"travel_start_1,omitempty"`
	TravelEnd1   string `json:"travel_end_1,omitempty"`
	TravelStart2 string `json:"travel_start_2,omitempty"`
	TravelEnd2   string `json:"travel_end_2,omitempty"`

	OnCall        bool                  `json:"on_call"`
	Interventions []InterventionPayload `json:"interventions,omitempty"`

	LunchVoucher  bool `json:"lunch_voucher"`
	DinnerVoucher bool `json:"dinner_voucher"`
	LunchCash     bool `json:"lunch_cash"`
	DinnerCash    bool `json:"dinner_cash"`

	TravelOverride    bool            `json:"travel_override"`
	TravelOverridePct decimal.Decimal `json:"travel_override_pct"`

	Note *string `json:"note,omitempty"`
}
