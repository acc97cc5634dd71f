package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/master/holiday"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/database"
)

type HolidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

const holidayColumns = `id, branch_id, name, date, optional, custom, created_at, updated_at`

func scanHoliday(row pgx.Row) (*holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(&h.ID, &h.BranchID, &h.Name, &h.Date, &h.Optional, &h.Custom, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HolidayRepository) Create(ctx context.Context, h *holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, branch_id, name, date, optional, custom)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query, h.ID, h.BranchID, h.Name, h.Date, h.Optional, h.Custom).
		Scan(&h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.ErrHolidayExists // unique (branch_id, date)
		}
		return fmt.Errorf("failed to create holiday: %w", err)
	}

	return nil
}

func (r *HolidayRepository) GetByDate(ctx context.Context, branchID uuid.UUID, date time.Time) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	h, err := scanHoliday(q.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM holidays WHERE branch_id = $1 AND date = $2`, holidayColumns), branchID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, holiday.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}

	return h, nil
}

func (r *HolidayRepository) ListRange(ctx context.Context, start, end time.Time) ([]*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY branch_id, date ASC`, holidayColumns), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func (r *HolidayRepository) List(ctx context.Context) ([]*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM holidays ORDER BY date ASC`, holidayColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func (r *HolidayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}

func collectHolidays(rows pgx.Rows) ([]*holiday.Holiday, error) {
	var result []*holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		result = append(result, h)
	}
	return result, rows.Err()
}
