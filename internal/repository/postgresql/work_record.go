package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lavorotracker/paycalc-backend-go/internal/domain/timesheet"
	"github.com/lavorotracker/paycalc-backend-go/internal/pkg/database"
)

type WorkRecordRepository struct {
	db *database.DB
}

func NewWorkRecordRepository(db *database.DB) timesheet.WorkRecordRepository {
	return &WorkRecordRepository{db: db}
}

const workRecordColumns = `
	id, user_id, date, kind,
	work_start_1, work_end_1, work_start_2, work_end_2,
	travel_start_1, travel_end_1, travel_start_2, travel_end_2,
	on_call, interventions,
	lunch_voucher, dinner_voucher, lunch_cash, dinner_cash,
	travel_override, travel_override_pct,
	note, created_at, updated_at`

// Create implements timesheet.WorkRecordRepository.
func (r *WorkRecordRepository) Create(ctx context.Context, record timesheet.WorkRecord) (timesheet.WorkRecord, error) {
	querier := GetQuerier(ctx, r.db)

	record.ID = uuid.New().String()

	interventions, err := json.Marshal(record.Interventions)
	if err != nil {
		return timesheet.WorkRecord{}, fmt.Errorf("failed to encode interventions: %w", err)
	}

	query := `
		INSERT INTO work_records (
			id, user_id, date, kind,
			work_start_1, work_end_1, work_start_2, work_end_2,
			travel_start_1, travel_end_1, travel_start_2, travel_end_2,
			on_call, interventions,
			lunch_voucher, dinner_voucher, lunch_cash, dinner_cash,
			travel_override, travel_override_pct,
			note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21
		)
		RETURNING created_at, updated_at`

	err = querier.QueryRow(ctx, query,
		record.ID, record.UserID, record.Date, string(record.Kind),
		record.WorkStart1, record.WorkEnd1, record.WorkStart2, record.WorkEnd2,
		record.TravelStart1, record.TravelEnd1, record.TravelStart2, record.TravelEnd2,
		record.OnCall, interventions,
		record.LunchVoucher, record.DinnerVoucher, record.LunchCash, record.DinnerCash,
		record.TravelOverride, record.TravelOverridePct,
		record.Note,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timesheet.WorkRecord{}, timesheet.ErrRecordExists
		}
		return timesheet.WorkRecord{}, fmt.Errorf("failed to create work record: %w", err)
	}

	return record, nil
}

// Update implements timesheet.WorkRecordRepository.
func (r *WorkRecordRepository) Update(ctx context.Context, record timesheet.WorkRecord) (timesheet.WorkRecord, error) {
	querier := GetQuerier(ctx, r.db)

	interventions, err := json.Marshal(record.Interventions)
	if err != nil {
		return timesheet.WorkRecord{}, fmt.Errorf("failed to encode interventions: %w", err)
	}

	query := `
		UPDATE work_records SET
			kind = $3,
			work_start_1 = $4, work_end_1 = $5, work_start_2 = $6, work_end_2 = $7,
			travel_start_1 = $8, travel_end_1 = $9, travel_start_2 = $10, travel_end_2 = $11,
			on_call = $12, interventions = $13,
			lunch_voucher = $14, dinner_voucher = $15, lunch_cash = $16, dinner_cash = $17,
			travel_override = $18, travel_override_pct = $19,
			note = $20,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING created_at, updated_at`

	err = querier.QueryRow(ctx, query,
		record.ID, record.UserID, string(record.Kind),
		record.WorkStart1, record.WorkEnd1, record.WorkStart2, record.WorkEnd2,
		record.TravelStart1, record.TravelEnd1, record.TravelStart2, record.TravelEnd2,
		record.OnCall, interventions,
		record.LunchVoucher, record.DinnerVoucher, record.LunchCash, record.DinnerCash,
		record.TravelOverride, record.TravelOverridePct,
		record.Note,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.WorkRecord{}, timesheet.ErrRecordNotFound
		}
		return timesheet.WorkRecord{}, fmt.Errorf("failed to update work record: %w", err)
	}

	return record, nil
}

// GetByID implements timesheet.WorkRecordRepository.
func (r *WorkRecordRepository) GetByID(ctx context.Context, id string, userID string) (timesheet.WorkRecord, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + workRecordColumns + `
		FROM work_records
		WHERE id = $1 AND user_id = $2`

	record, err := scanWorkRecord(querier.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.WorkRecord{}, timesheet.ErrRecordNotFound
		}
		return timesheet.WorkRecord{}, fmt.Errorf("failed to get work record: %w", err)
	}

	return record, nil
}

// GetByDate implements timesheet.WorkRecordRepository.
func (r *WorkRecordRepository) GetByDate(ctx context.Context, userID string, date time.Time) (timesheet.WorkRecord, error) {
	querier := GetQuerier(ctx, r.db)

	query := `SELECT ` + workRecordColumns + `
		FROM work_records
		WHERE user_id = $1 AND date = $2`

	record, err := scanWorkRecord(querier.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.WorkRecord{}, timesheet.ErrRecordNotFound
		}
		return timesheet.WorkRecord{}, fmt.Errorf("failed to get work record by date: %w", err)
	}

	return record, nil
}

// ListByMonth implements timesheet.WorkRecordRepository.
func (r *WorkRecordRepository) ListByMonth(ctx context.Context, userID string, year int, month time.Month) ([]timesheet.WorkRecord, error) {
	querier := GetQuerier(ctx, r.db)

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query := `SELECT ` + workRecordColumns + `
		FROM work_records
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date`

	rows, err := querier.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list work records: %w", err)
	}
	defer rows.Close()

	var records []timesheet.WorkRecord
	for rows.Next() {
		record, err := scanWorkRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work records: %w", err)
	}

	return records, nil
}

// Delete implements timesheet.WorkRecordRepository.
func (r *WorkRecordRepository) Delete(ctx context.Context, id string, userID string) error {
	querier := GetQuerier(ctx, r.db)

	tag, err := querier.Exec(ctx, `DELETE FROM work_records WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete work record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrRecordNotFound
	}

	return nil
}

func scanWorkRecord(row pgx.Row) (timesheet.WorkRecord, error) {
	var (
		record        timesheet.WorkRecord
		kind          string
		interventions []byte
	)

	err := row.Scan(
		&record.ID, &record.UserID, &record.Date, &kind,
		&record.WorkStart1, &record.WorkEnd1, &record.WorkStart2, &record.WorkEnd2,
		&record.TravelStart1, &record.TravelEnd1, &record.TravelStart2, &record.TravelEnd2,
		&record.OnCall, &interventions,
		&record.LunchVoucher, &record.DinnerVoucher, &record.LunchCash, &record.DinnerCash,
		&record.TravelOverride, &record.TravelOverridePct,
		&record.Note, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return timesheet.WorkRecord{}, err
	}

	record.Kind = timesheet.ParseDayKind(kind)

	// Malformed stored payloads degrade to an empty intervention list so a
	// single bad row never takes the whole month down.
	if len(interventions) > 0 {
		if err := json.Unmarshal(interventions, &record.Interventions); err != nil {
			record.Interventions = nil
		}
	}

	return record, nil
}
