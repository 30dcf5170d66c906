package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/oncall"
	"github.com/lavorotracker/paycalc-backend-go/internal/pkg/database"
)

type OnCallDayRepository struct {
	db *database.DB
}

func NewOnCallDayRepository(db *database.DB) oncall.CalendarRepository {
	return &OnCallDayRepository{db: db}
}

// Mark implements oncall.CalendarRepository. Marking an already marked day is
// a no-op that returns the existing row.
func (r *OnCallDayRepository) Mark(ctx context.Context, userID string, date time.Time) (oncall.Day, error) {
	querier := GetQuerier(ctx, r.db)

	day := oncall.Day{
		ID:     uuid.New().String(),
		UserID: userID,
		Date:   date,
	}

	query := `
		INSERT INTO oncall_days (id, user_id, date)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	err := querier.QueryRow(ctx, query, day.ID, day.UserID, day.Date).Scan(&day.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return r.getByDate(ctx, userID, date)
		}
		return oncall.Day{}, fmt.Errorf("failed to mark on-call day: %w", err)
	}

	return day, nil
}

// Unmark implements oncall.CalendarRepository.
func (r *OnCallDayRepository) Unmark(ctx context.Context, userID string, date time.Time) error {
	querier := GetQuerier(ctx, r.db)

	tag, err := querier.Exec(ctx, `DELETE FROM oncall_days WHERE user_id = $1 AND date = $2`, userID, date)
	if err != nil {
		return fmt.Errorf("failed to unmark on-call day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return oncall.ErrDayNotFound
	}

	return nil
}

// ListByMonth implements oncall.CalendarRepository.
func (r *OnCallDayRepository) ListByMonth(ctx context.Context, userID string, year int, month time.Month) ([]oncall.Day, error) {
	querier := GetQuerier(ctx, r.db)

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query := `
		SELECT id, user_id, date, created_at
		FROM oncall_days
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date`

	rows, err := querier.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list on-call days: %w", err)
	}
	defer rows.Close()

	var days []oncall.Day
	for rows.Next() {
		var day oncall.Day
		if err := rows.Scan(&day.ID, &day.UserID, &day.Date, &day.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan on-call day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate on-call days: %w", err)
	}

	return days, nil
}

func (r *OnCallDayRepository) getByDate(ctx context.Context, userID string, date time.Time) (oncall.Day, error) {
	querier := GetQuerier(ctx, r.db)

	var day oncall.Day
	err := querier.QueryRow(ctx,
		`SELECT id, user_id, date, created_at FROM oncall_days WHERE user_id = $1 AND date = $2`,
		userID, date,
	).Scan(&day.ID, &day.UserID, &day.Date, &day.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return oncall.Day{}, oncall.ErrDayNotFound
		}
		return oncall.Day{}, fmt.Errorf("failed to get on-call day: %w", err)
	}

	return day, nil
}
