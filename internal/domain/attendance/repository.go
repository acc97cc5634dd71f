package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	// UpsertPunchIn inserts the day's row or, when a row already exists
	// for (user, date), returns it unchanged so the caller can reject
	// the duplicate punch.
	UpsertPunchIn(ctx context.Context, att *Attendance) (*Attendance, bool, error)
	UpdatePunchOut(ctx context.Context, att *Attendance) error
	// EnsureDaily inserts an Absent row for (user, date) if none exists
	// and returns the stored row either way.
	EnsureDaily(ctx context.Context, userID uuid.UUID, date time.Time, status Status) (*Attendance, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*Attendance, error)
	ListByUserAndRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*Attendance, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]*Attendance, error)
	ListUserIDsWithoutRecord(ctx context.Context, date time.Time) ([]uuid.UUID, error)
}
