package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/timesheet"
	"github.com/lavorotracker/paycalc-backend-go/internal/pkg/database"
	"github.com/lavorotracker/paycalc-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type TimesheetServiceImpl struct {
	db         *database.DB
	recordRepo timesheet.WorkRecordRepository
}

func NewTimesheetService(db *database.DB, recordRepo timesheet.WorkRecordRepository) timesheet.TimesheetService {
	return &TimesheetServiceImpl{db: db, recordRepo: recordRepo}
}

// Save implements timesheet.TimesheetService. One record per user per date:
// saving over an existing date updates it in place.
func (s *TimesheetServiceImpl) Save(ctx context.Context, userID string, req timesheet.SaveRecordRequest) (timesheet.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.RecordResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return timesheet.RecordResponse{}, fmt.Errorf("failed to parse record date: %w", err)
	}

	record := timesheet.WorkRecord{
		UserID:         userID,
		Date:           date,
		Kind:           timesheet.ParseDayKind(req.Kind),
		WorkStart1:     req.WorkStart1,
		WorkEnd1:       req.WorkEnd1,
		WorkStart2:     req.WorkStart2,
		WorkEnd2:       req.WorkEnd2,
		TravelStart1:   req.TravelStart1,
		TravelEnd1:     req.TravelEnd1,
		TravelStart2:   req.TravelStart2,
		TravelEnd2:     req.TravelEnd2,
		OnCall:         req.OnCall,
		Interventions:  mapInterventions(req.Interventions),
		LunchVoucher:   req.LunchVoucher,
		DinnerVoucher:  req.DinnerVoucher,
		LunchCash:      req.LunchCash,
		DinnerCash:     req.DinnerCash,
		TravelOverride: req.TravelOverride,
		Note:           req.Note,
	}
	if req.TravelOverridePct != nil {
		record.TravelOverridePct = *req.TravelOverridePct
	} else {
		record.TravelOverridePct = decimal.NewFromInt(1)
	}

	// The lookup and the write happen in one transaction so two saves for the
	// same date cannot both take the create path.
	var saved timesheet.WorkRecord
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.recordRepo.GetByDate(txCtx, userID, date)
		switch {
		case err == nil:
			record.ID = existing.ID
			saved, err = s.recordRepo.Update(txCtx, record)
			return err
		case errors.Is(err, timesheet.ErrRecordNotFound):
			saved, err = s.recordRepo.Create(txCtx, record)
			return err
		default:
			return err
		}
	})
	if err != nil {
		return timesheet.RecordResponse{}, err
	}
	return mapToResponse(saved), nil
}

// Get implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Get(ctx context.Context, userID string, id string) (timesheet.RecordResponse, error) {
	record, err := s.recordRepo.GetByID(ctx, id, userID)
	if err != nil {
		return timesheet.RecordResponse{}, err
	}
	return mapToResponse(record), nil
}

// ListMonth implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListMonth(ctx context.Context, userID string, year int, month time.Month) ([]timesheet.RecordResponse, error) {
	records, err := s.recordRepo.ListByMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	result := make([]timesheet.RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, mapToResponse(r))
	}
	return result, nil
}

// Delete implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Delete(ctx context.Context, userID string, id string) error {
	return s.recordRepo.Delete(ctx, id, userID)
}

func mapInterventions(payloads []timesheet.InterventionPayload) []timesheet.Intervention {
	if len(payloads) == 0 {
		return nil
	}
	out := make([]timesheet.Intervention, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, timesheet.Intervention{
			WorkStart1:   p.WorkStart1,
			WorkEnd1:     p.WorkEnd1,
			WorkStart2:   p.WorkStart2,
			WorkEnd2:     p.WorkEnd2,
			TravelStart1: p.TravelStart1,
			TravelEnd1:   p.TravelEnd1,
			TravelStart2: p.TravelStart2,
			TravelEnd2:   p.TravelEnd2,
		})
	}
	return out
}

func mapToResponse(r timesheet.WorkRecord) timesheet.RecordResponse {
	interventions := make([]timesheet.InterventionPayload, 0, len(r.Interventions))
	for _, iv := range r.Interventions {
		interventions = append(interventions, timesheet.InterventionPayload{
			WorkStart1:   iv.WorkStart1,
			WorkEnd1:     iv.WorkEnd1,
			WorkStart2:   iv.WorkStart2,
			WorkEnd2:     iv.WorkEnd2,
			TravelStart1: iv.TravelStart1,
			TravelEnd1:   iv.TravelEnd1,
			TravelStart2: iv.TravelStart2,
			TravelEnd2:   iv.TravelEnd2,
		})
	}

	return timesheet.RecordResponse{
		ID:                r.ID,
		Date:              r.Date.Format("2006-01-02"),
		Kind:              string(r.Kind),
		WorkStart1:        r.WorkStart1,
		WorkEnd1:          r.WorkEnd1,
		WorkStart2:        r.WorkStart2,
		WorkEnd2:          r.WorkEnd2,
		TravelStart1:      r.TravelStart1,
		TravelEnd1:        r.TravelEnd1,
		TravelStart2:      r.TravelStart2,
		TravelEnd2:        r.TravelEnd2,
		OnCall:            r.OnCall,
		Interventions:     interventions,
		LunchVoucher:      r.LunchVoucher,
		DinnerVoucher:     r.DinnerVoucher,
		LunchCash:         r.LunchCash,
		DinnerCash:        r.DinnerCash,
		TravelOverride:    r.TravelOverride,
		TravelOverridePct: r.TravelOverridePct,
		Note:              r.Note,
	}
}
