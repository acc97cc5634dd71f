package attendance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/master/branch"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/master/holiday"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/notification"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/geocode"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/timeutil"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/utils"
)

type service struct {
	attendanceRepo attendance.Repository
	branchRepo     branch.Repository
	holidayRepo    holiday.Repository
	userRepo       user.Repository
	notifier       notification.Service
	geocoder       geocode.Reverser
	rules          attendance.Rules
	logger         *slog.Logger
	now            func() time.Time
}

func NewService(
	attendanceRepo attendance.Repository,
	branchRepo branch.Repository,
	holidayRepo holiday.Repository,
	userRepo user.Repository,
	notifier notification.Service,
	geocoder geocode.Reverser,
	rules attendance.Rules,
	logger *slog.Logger,
) attendance.Service {
	return &service{
		attendanceRepo: attendanceRepo,
		branchRepo:     branchRepo,
		holidayRepo:    holidayRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		geocoder:       geocoder,
		rules:          rules,
		logger:         logger,
		now:            time.Now,
	}
}

// userLocation resolves the timezone of the user's branch. Users with
// no branch, or branches with a broken timezone, fall back to UTC.
func (s *service) userLocation(ctx context.Context, userID uuid.UUID) (*branch.Branch, *time.Location) {
	b, err := s.branchRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, branch.ErrBranchNotFound) {
			s.logger.Warn("branch lookup failed, using UTC",
				slog.String("user_id", userID.String()),
				slog.Any("error", err))
		}
		return nil, time.UTC
	}
	return b, timeutil.LocationOrUTC(b.Timezone)
}

// buildSnapshot assembles the punch location. Reverse geocoding is
// best effort; a failed lookup leaves Address nil and the punch goes
// through.
func (s *service) buildSnapshot(ctx context.Context, req *attendance.PunchRequest, b *branch.Branch) *attendance.LocationSnapshot {
	if req.Latitude == nil || req.Longitude == nil {
		return nil
	}

	snapshot := &attendance.LocationSnapshot{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	}

	if b != nil && b.Latitude != nil && b.Longitude != nil {
		distance := utils.CalculateHaversineDistance(*req.Latitude, *req.Longitude, *b.Latitude, *b.Longitude)
		snapshot.BranchDistanceMeters = &distance
	}

	address, err := s.geocoder.Reverse(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		s.logger.Warn("reverse geocode failed",
			slog.Float64("latitude", *req.Latitude),
			slog.Float64("longitude", *req.Longitude),
			slog.Any("error", err))
	} else if address != "" {
		snapshot.Address = &address
	}

	return snapshot
}

func (s *service) PunchIn(ctx context.Context, userID uuid.UUID, req *attendance.PunchRequest, origin attendance.Origin) (*attendance.AttendanceResponse, error) {
	if len(req.Validate()) > 0 {
		return nil, attendance.ErrValidationFailed
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, attendance.ErrUserNotFound
	}
	if !u.Active {
		return nil, attendance.ErrUserNotFound
	}

	b, loc := s.userLocation(ctx, userID)
	now := s.now()
	nowUTC := now.UTC()
	day := timeutil.DayOf(now, loc)

	status := derivePunchInStatus(now.In(loc), cutoffOn(day, s.rules, loc))

	att := &attendance.Attendance{
		ID:              uuid.New(),
		UserID:          userID,
		Date:            day,
		PunchIn:         &nowUTC,
		Status:          status,
		Origin:          origin,
		PunchInLocation: s.buildSnapshot(ctx, req, b),
	}

	stored, created, err := s.attendanceRepo.UpsertPunchIn(ctx, att)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, attendance.ErrAlreadyPunchedIn
	}

	if stored.Status == attendance.StatusHalfDay {
		s.notifier.NotifyRoles(
			[]user.Role{user.RoleAdmin, user.RoleHR},
			notification.TypeLateArrival,
			"Late arrival",
			"An employee punched in after the late cutoff.",
		)
	}

	s.logger.Info("punch in recorded",
		slog.String("user_id", userID.String()),
		slog.String("date", day.Format(timeutil.DateLayout)),
		slog.String("status", string(stored.Status)),
		slog.String("origin", string(origin)))

	return toResponse(stored), nil
}

func (s *service) PunchOut(ctx context.Context, userID uuid.UUID, req *attendance.PunchRequest, origin attendance.Origin) (*attendance.AttendanceResponse, error) {
	if len(req.Validate()) > 0 {
		return nil, attendance.ErrValidationFailed
	}

	b, loc := s.userLocation(ctx, userID)
	now := s.now()
	nowUTC := now.UTC()
	day := timeutil.DayOf(now, loc)

	att, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, day)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return nil, attendance.ErrNotPunchedIn
		}
		return nil, err
	}
	if att.PunchIn == nil {
		return nil, attendance.ErrNotPunchedIn
	}
	if att.PunchOut != nil {
		return nil, attendance.ErrAlreadyPunchedOut
	}

	onHoliday := false
	if b != nil {
		if h, err := s.holidayRepo.GetByDate(ctx, b.ID, day); err == nil && !h.Optional {
			onHoliday = true
		}
	}

	att.Status = derivePunchOutStatus(s.rules, att.PunchIn.In(loc), now.In(loc), cutoffOn(day, s.rules, loc), onHoliday)
	att.PunchOut = &nowUTC
	att.PunchOutLocation = s.buildSnapshot(ctx, req, b)

	if err := s.attendanceRepo.UpdatePunchOut(ctx, att); err != nil {
		return nil, err
	}

	if att.Status == attendance.StatusOverTime {
		s.notifier.NotifyRoles(
			[]user.Role{user.RoleAdmin, user.RoleHR},
			notification.TypeOvertimeWorked,
			"Overtime worked on holiday",
			"An employee completed a full attendance cycle on a company holiday.",
		)
	}

	s.logger.Info("punch out recorded",
		slog.String("user_id", userID.String()),
		slog.String("date", day.Format(timeutil.DateLayout)),
		slog.String("status", string(att.Status)))

	return toResponse(att), nil
}

func (s *service) ResolveDailyStatus(ctx context.Context, userID uuid.UUID, date string) (*attendance.AttendanceResponse, error) {
	b, loc := s.userLocation(ctx, userID)

	// Empty date means the current day in the user's branch timezone.
	var day time.Time
	if date == "" {
		day = timeutil.DayOf(s.now().In(loc), loc)
	} else {
		parsed, err := time.ParseInLocation(timeutil.DateLayout, date, loc)
		if err != nil {
			return nil, attendance.ErrValidationFailed
		}
		day = timeutil.DayOf(parsed, loc)
	}

	att, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, day)
	if err == nil {
		return toResponse(att), nil
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return nil, err
	}

	status := s.deriveNoPunchStatus(ctx, day, b)

	stored, err := s.attendanceRepo.EnsureDaily(ctx, userID, day, status)
	if err != nil {
		return nil, err
	}

	return toResponse(stored), nil
}

// deriveNoPunchStatus decides what a day with no punches counts as. A
// non-optional holiday on the user's branch calendar wins, then the
// branch's weekend days, then Absent.
func (s *service) deriveNoPunchStatus(ctx context.Context, day time.Time, b *branch.Branch) attendance.Status {
	if b == nil {
		return attendance.StatusAbsent
	}
	if h, err := s.holidayRepo.GetByDate(ctx, b.ID, day); err == nil && !h.Optional {
		return attendance.StatusHoliday
	}
	if b.IsWeekend(day.Weekday()) {
		return attendance.StatusWeekend
	}
	return attendance.StatusAbsent
}

func (s *service) ListByRange(ctx context.Context, userID uuid.UUID, query *attendance.ListQuery) ([]*attendance.AttendanceResponse, error) {
	_, loc := s.userLocation(ctx, userID)

	start, err := time.ParseInLocation(timeutil.DateLayout, query.StartDate, loc)
	if err != nil {
		return nil, attendance.ErrValidationFailed
	}
	end, err := time.ParseInLocation(timeutil.DateLayout, query.EndDate, loc)
	if err != nil {
		return nil, attendance.ErrValidationFailed
	}

	records, err := s.attendanceRepo.ListByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]*attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toResponse(att))
	}

	return responses, nil
}

// MarkAbsentees backfills yesterday's missing rows for every active
// user, deriving Weekend or Holiday where those apply. Returns how
// many users were marked Absent.
func (s *service) MarkAbsentees(ctx context.Context) (int, error) {
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	// Branch timezones can disagree about which date "yesterday" is,
	// so users are grouped by their local date and each distinct date
	// is checked with one missing-record query.
	type sweepTarget struct {
		u   *user.User
		b   *branch.Branch
		loc *time.Location
		day time.Time
	}
	targets := make([]sweepTarget, 0, len(users))
	missingByDay := make(map[string]map[uuid.UUID]bool)
	for _, u := range users {
		b, loc := s.userLocation(ctx, u.ID)
		day := timeutil.DayOf(s.now().In(loc).AddDate(0, 0, -1), loc)
		targets = append(targets, sweepTarget{u: u, b: b, loc: loc, day: day})

		key := day.Format(timeutil.DateLayout)
		if _, ok := missingByDay[key]; ok {
			continue
		}
		ids, err := s.attendanceRepo.ListUserIDsWithoutRecord(ctx, day)
		if err != nil {
			s.logger.Error("absentee sweep lookup failed",
				slog.String("date", key),
				slog.Any("error", err))
			missingByDay[key] = map[uuid.UUID]bool{}
			continue
		}
		missing := make(map[uuid.UUID]bool, len(ids))
		for _, id := range ids {
			missing[id] = true
		}
		missingByDay[key] = missing
	}

	marked := 0
	for _, t := range targets {
		u, day, loc := t.u, t.day, t.loc
		if !missingByDay[day.Format(timeutil.DateLayout)][u.ID] {
			continue
		}

		status := s.deriveNoPunchStatus(ctx, day, t.b)
		if _, err := s.attendanceRepo.EnsureDaily(ctx, u.ID, day, status); err != nil {
			s.logger.Error("absentee sweep insert failed",
				slog.String("user_id", u.ID.String()),
				slog.Any("error", err))
			continue
		}

		if status == attendance.StatusAbsent {
			marked++
			s.notifier.Notify([]uuid.UUID{u.ID},
				notification.TypeMarkedAbsent,
				"Marked absent",
				"No attendance was recorded for "+timeutil.DateString(day, loc)+".")
		}
	}

	return marked, nil
}

func toResponse(att *attendance.Attendance) *attendance.AttendanceResponse {
	return &attendance.AttendanceResponse{
		ID:               att.ID.String(),
		UserID:           att.UserID.String(),
		Date:             att.Date.Format(timeutil.DateLayout),
		PunchIn:          att.PunchIn,
		PunchOut:         att.PunchOut,
		Status:           att.Status,
		Origin:           att.Origin,
		Duration:         timeutil.FormatDuration(att.WorkedDuration()),
		PunchInLocation:  att.PunchInLocation,
		PunchOutLocation: att.PunchOutLocation,
	}
}
