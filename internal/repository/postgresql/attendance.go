package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/database"
)

type AttendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, date, punch_in, punch_out, status, origin,
	punch_in_location, punch_out_location, created_at, updated_at`

func scanAttendance(row pgx.Row) (*attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID,
		&att.UserID,
		&att.Date,
		&att.PunchIn,
		&att.PunchOut,
		&att.Status,
		&att.Origin,
		&att.PunchInLocation,
		&att.PunchOutLocation,
		&att.CreatedAt,
		&att.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// UpsertPunchIn inserts the day's row. On conflict the existing row is
// returned untouched; created reports whether this call inserted it.
func (r *AttendanceRepository) UpsertPunchIn(ctx context.Context, att *attendance.Attendance) (*attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO attendances (id, user_id, date, punch_in, status, origin, punch_in_location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, date) DO UPDATE SET updated_at = attendances.updated_at
		RETURNING %s, (xmax = 0) AS inserted`, attendanceColumns)

	var stored attendance.Attendance
	var inserted bool
	err := q.QueryRow(ctx, query,
		att.ID,
		att.UserID,
		att.Date,
		att.PunchIn,
		att.Status,
		att.Origin,
		att.PunchInLocation,
	).Scan(
		&stored.ID,
		&stored.UserID,
		&stored.Date,
		&stored.PunchIn,
		&stored.PunchOut,
		&stored.Status,
		&stored.Origin,
		&stored.PunchInLocation,
		&stored.PunchOutLocation,
		&stored.CreatedAt,
		&stored.UpdatedAt,
		&inserted,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert punch in: %w", err)
	}

	return &stored, inserted, nil
}

func (r *AttendanceRepository) UpdatePunchOut(ctx context.Context, att *attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET punch_out = $1, status = $2, punch_out_location = $3, updated_at = NOW()
		WHERE id = $4`

	tag, err := q.Exec(ctx, query, att.PunchOut, att.Status, att.PunchOutLocation, att.ID)
	if err != nil {
		return fmt.Errorf("failed to update punch out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// EnsureDaily inserts a punchless row for (user, date) with the given
// status if none exists and returns the stored row either way.
func (r *AttendanceRepository) EnsureDaily(ctx context.Context, userID uuid.UUID, date time.Time, status attendance.Status) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO attendances (id, user_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, date) DO UPDATE SET updated_at = attendances.updated_at
		RETURNING %s`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, uuid.New(), userID, date, status))
	if err != nil {
		return nil, fmt.Errorf("failed to ensure daily attendance: %w", err)
	}

	return att, nil
}

func (r *AttendanceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status attendance.Status) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE attendances SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("failed to update attendance status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *AttendanceRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM attendances WHERE user_id = $1 AND date = $2`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

func (r *AttendanceRepository) ListByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendances
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC`, attendanceColumns)

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

func (r *AttendanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendances
		WHERE date >= $1 AND date <= $2
		ORDER BY user_id, date ASC`, attendanceColumns)

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListUserIDsWithoutRecord returns active users missing an attendance
// row on the given date. Used by the nightly absentee sweep.
func (r *AttendanceRepository) ListUserIDsWithoutRecord(ctx context.Context, date time.Time) ([]uuid.UUID, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id FROM users u
		WHERE u.active = TRUE
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a WHERE a.user_id = u.id AND a.date = $1
		  )`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list users without attendance: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func collectAttendances(rows pgx.Rows) ([]*attendance.Attendance, error) {
	var result []*attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}
	return result, rows.Err()
}
