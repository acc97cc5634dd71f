package attendance

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	PunchIn(ctx context.Context, userID uuid.UUID, req *PunchRequest, origin Origin) (*AttendanceResponse, error)
	PunchOut(ctx context.Context, userID uuid.UUID, req *PunchRequest, origin Origin) (*AttendanceResponse, error)
	// ResolveDailyStatus returns the user's record for the given local
	// date, materializing a derived row (Absent, Weekend or Holiday)
	// when no punches were recorded.
	ResolveDailyStatus(ctx context.Context, userID uuid.UUID, date string) (*AttendanceResponse, error)
	ListByRange(ctx context.Context, userID uuid.UUID, query *ListQuery) ([]*AttendanceResponse, error)
	// MarkAbsentees inserts Absent rows for every active user without a
	// record on the given date. Run by the nightly sweep.
	MarkAbsentees(ctx context.Context) (int, error)
}
