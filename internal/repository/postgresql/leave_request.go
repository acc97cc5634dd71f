package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/database"
)

type LeaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) *LeaveRequestRepository {
	return &LeaveRequestRepository{db: db}
}

const leaveRequestColumns = `id, user_id, type, start_date, end_date, half_day, days, reason,
	status, attachment_url, reviewer_id, review_note, reviewed_at, created_at, updated_at`

func scanLeaveRequest(row pgx.Row) (*leave.Request, error) {
	var req leave.Request
	err := row.Scan(
		&req.ID,
		&req.UserID,
		&req.Type,
		&req.StartDate,
		&req.EndDate,
		&req.HalfDay,
		&req.Days,
		&req.Reason,
		&req.Status,
		&req.AttachmentURL,
		&req.ReviewerID,
		&req.ReviewNote,
		&req.ReviewedAt,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *LeaveRequestRepository) Create(ctx context.Context, req *leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, user_id, type, start_date, end_date, half_day, days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query,
		req.ID, req.UserID, req.Type, req.StartDate, req.EndDate,
		req.HalfDay, req.Days, req.Reason, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}

	return nil
}

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanLeaveRequest(q.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM leave_requests WHERE id = $1`, leaveRequestColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

func (r *LeaveRequestRepository) Update(ctx context.Context, req *leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, attachment_url = $2, reviewer_id = $3, review_note = $4,
		    reviewed_at = $5, updated_at = NOW()
		WHERE id = $6`

	tag, err := q.Exec(ctx, query,
		req.Status, req.AttachmentURL, req.ReviewerID, req.ReviewNote, req.ReviewedAt, req.ID)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}

	return nil
}

func (r *LeaveRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM leave_requests
		WHERE user_id = $1
		ORDER BY created_at DESC`, leaveRequestColumns), userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func (r *LeaveRequestRepository) ListByStatus(ctx context.Context, status leave.RequestStatus) ([]*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, u.first_name || ' ' || u.last_name
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		WHERE lr.status = $1
		ORDER BY lr.created_at ASC`,
		prefixColumns("lr", leaveRequestColumns))

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by status: %w", err)
	}
	defer rows.Close()

	var result []*leave.Request
	for rows.Next() {
		var req leave.Request
		err := rows.Scan(
			&req.ID, &req.UserID, &req.Type, &req.StartDate, &req.EndDate,
			&req.HalfDay, &req.Days, &req.Reason, &req.Status, &req.AttachmentURL,
			&req.ReviewerID, &req.ReviewNote, &req.ReviewedAt, &req.CreatedAt, &req.UpdatedAt,
			&req.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, &req)
	}

	return result, rows.Err()
}

func (r *LeaveRequestRepository) HasOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE user_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)`, userID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}

	return exists, nil
}

func (r *LeaveRequestRepository) ListApprovedInRange(ctx context.Context, start, end time.Time) ([]*leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM leave_requests
		WHERE status = 'approved'
		  AND start_date <= $2
		  AND end_date >= $1
		ORDER BY user_id, start_date ASC`, leaveRequestColumns), start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave requests: %w", err)
	}
	defer rows.Close()

	return collectLeaveRequests(rows)
}

func collectLeaveRequests(rows pgx.Rows) ([]*leave.Request, error) {
	var result []*leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, req)
	}
	return result, rows.Err()
}
