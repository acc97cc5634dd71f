package cron

import (
	"context"
	"log/slog"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/attendance"
)

// AttendanceJobs holds the scheduled attendance maintenance work.
type AttendanceJobs struct {
	attendanceService attendance.Service
	logger            *slog.Logger
}

func NewAttendanceJobs(attendanceService attendance.Service, logger *slog.Logger) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// MarkAbsentees backfills yesterday's record for every active user who never
// punched in, resolving it to Absent, Holiday or Weekend per branch calendar.
func (j *AttendanceJobs) MarkAbsentees(ctx context.Context) error {
	marked, err := j.attendanceService.MarkAbsentees(ctx)
	if err != nil {
		return err
	}

	if marked > 0 {
		j.logger.Info("absentee backfill completed", slog.Int("marked", marked))
	}
	return nil
}
