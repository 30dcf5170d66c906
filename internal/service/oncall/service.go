package oncall

import (
	"context"
	"fmt"
	"time"

	"github.com/lavorotracker/paycalc-backend-go/internal/domain/oncall"
)

type CalendarServiceImpl struct {
	calendarRepo oncall.CalendarRepository
}

func NewCalendarService(calendarRepo oncall.CalendarRepository) oncall.CalendarService {
	return &CalendarServiceImpl{calendarRepo: calendarRepo}
}

// Mark implements oncall.CalendarService.
func (s *CalendarServiceImpl) Mark(ctx context.Context, userID string, req oncall.MarkDayRequest) (oncall.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return oncall.DayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return oncall.DayResponse{}, fmt.Errorf("failed to parse on-call date: %w", err)
	}

	day, err := s.calendarRepo.Mark(ctx, userID, date)
	if err != nil {
		return oncall.DayResponse{}, err
	}

	return oncall.DayResponse{ID: day.ID, Date: day.Date.Format("2006-01-02")}, nil
}

// Unmark implements oncall.CalendarService.
func (s *CalendarServiceImpl) Unmark(ctx context.Context, userID string, dateStr string) error {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("failed to parse on-call date: %w", err)
	}
	return s.calendarRepo.Unmark(ctx, userID, date)
}

// ListMonth implements oncall.CalendarService.
func (s *CalendarServiceImpl) ListMonth(ctx context.Context, userID string, year int, month time.Month) ([]oncall.DayResponse, error) {
	days, err := s.calendarRepo.ListByMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	result := make([]oncall.DayResponse, 0, len(days))
	for _, d := range days {
		result = append(result, oncall.DayResponse{ID: d.ID, Date: d.Date.Format("2006-01-02")})
	}
	return result, nil
}
