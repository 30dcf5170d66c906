package earnings

import (
	"context"
	"errors"
	"time"

	"github.com/lavorotracker/paycalc-backend-go/internal/domain/earnings"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/oncall"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/settings"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

type EarningsServiceImpl struct {
	recordRepo   timesheet.WorkRecordRepository
	settingsRepo settings.SettingsRepository
	oncallRepo   oncall.CalendarRepository
}

func NewEarningsService(
	recordRepo timesheet.WorkRecordRepository,
	settingsRepo settings.SettingsRepository,
	oncallRepo oncall.CalendarRepository,
) earnings.EarningsService {
	return &EarningsServiceImpl{
		recordRepo:   recordRepo,
		settingsRepo: settingsRepo,
		oncallRepo:   oncallRepo,
	}
}

// loadSettings never fails on absence: users that have not saved settings
// calculate with the documented defaults.
func (s *EarningsServiceImpl) loadSettings(ctx context.Context, userID string) (settings.CalcSettings, error) {
	cfg, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Defaults(userID), nil
		}
		return settings.CalcSettings{}, err
	}
	return cfg, nil
}

// DailyBreakdown implements earnings.EarningsService.
func (s *EarningsServiceImpl) DailyBreakdown(ctx context.Context, userID string, date time.Time) (earnings.DailyBreakdown, error) {
	cfg, err := s.loadSettings(ctx, userID)
	if err != nil {
		return earnings.DailyBreakdown{}, err
	}

	record, err := s.recordRepo.GetByDate(ctx, userID, date)
	if err != nil {
		return earnings.DailyBreakdown{}, err
	}

	return NewDailyCalculator(cfg).Calculate(record)
}

// MonthlySummary implements earnings.EarningsService.
func (s *EarningsServiceImpl) MonthlySummary(ctx context.Context, userID string, year int, month time.Month) (earnings.MonthlyAggregate, error) {
	cfg, err := s.loadSettings(ctx, userID)
	if err != nil {
		return earnings.MonthlyAggregate{}, err
	}

	records, err := s.recordRepo.ListByMonth(ctx, userID, year, month)
	if err != nil {
		return earnings.MonthlyAggregate{}, err
	}

	calc := NewDailyCalculator(cfg)
	recorded := make(map[string]bool, len(records))
	days := make([]earnings.DailyBreakdown, 0, len(records))
	for _, rec := range records {
		breakdown, err := calc.Calculate(rec)
		if err != nil {
			return earnings.MonthlyAggregate{}, err
		}
		days = append(days, breakdown)
		recorded[rec.Date.Format("2006-01-02")] = true
	}

	// On-call calendar dates without a work record still earn the indemnity.
	oncallDays, err := s.oncallRepo.ListByMonth(ctx, userID, year, month)
	if err != nil {
		return earnings.MonthlyAggregate{}, err
	}
	var bare []BareStandby
	for _, day := range oncallDays {
		if recorded[day.Date.Format("2006-01-02")] {
			continue
		}
		bare = append(bare, BareStandby{
			Date:      day.Date,
			Indemnity: BareStandbyIndemnity(cfg, day.Date),
		})
	}

	return AggregateMonth(year, month, days, bare), nil
}

// EstimateNet implements earnings.EarningsService.
func (s *EarningsServiceImpl) EstimateNet(ctx context.Context, userID string, gross decimal.Decimal) (earnings.NetIncomeResult, error) {
	cfg, err := s.loadSettings(ctx, userID)
	if err != nil {
		return earnings.NetIncomeResult{}, err
	}
	return NewNetEstimator(cfg).Estimate(gross), nil
}
