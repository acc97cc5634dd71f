package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/master/branch"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/master/holiday"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/report"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/logging"
)

type stubAttendanceRepo struct {
	records []*attendance.Attendance
}

func (s *stubAttendanceRepo) UpsertPunchIn(_ context.Context, _ *attendance.Attendance) (*attendance.Attendance, bool, error) {
	return nil, false, nil
}
func (s *stubAttendanceRepo) UpdatePunchOut(_ context.Context, _ *attendance.Attendance) error {
	return nil
}
func (s *stubAttendanceRepo) EnsureDaily(_ context.Context, _ uuid.UUID, _ time.Time, _ attendance.Status) (*attendance.Attendance, error) {
	return nil, nil
}
func (s *stubAttendanceRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ attendance.Status) error {
	return nil
}
func (s *stubAttendanceRepo) GetByUserAndDate(_ context.Context, _ uuid.UUID, _ time.Time) (*attendance.Attendance, error) {
	return nil, attendance.ErrAttendanceNotFound
}
func (s *stubAttendanceRepo) ListByUserAndRange(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]*attendance.Attendance, error) {
	return nil, nil
}
func (s *stubAttendanceRepo) ListByRange(_ context.Context, _, _ time.Time) ([]*attendance.Attendance, error) {
	return s.records, nil
}
func (s *stubAttendanceRepo) ListUserIDsWithoutRecord(_ context.Context, _ time.Time) ([]uuid.UUID, error) {
	return nil, nil
}

type stubUserRepo struct {
	users []*user.User
}

func (s *stubUserRepo) Create(_ context.Context, _ *user.User) error { return nil }
func (s *stubUserRepo) Update(_ context.Context, _ *user.User) error { return nil }
func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (s *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}
func (s *stubUserRepo) ListActive(_ context.Context) ([]*user.User, error) { return s.users, nil }
func (s *stubUserRepo) ListIDsByRoles(_ context.Context, _ []user.Role) ([]uuid.UUID, error) {
	return nil, nil
}
func (s *stubUserRepo) AdjustLeaveBalance(_ context.Context, _ uuid.UUID, _ float64) (float64, error) {
	return 0, nil
}

type stubLeaveRepo struct {
	approved []*leave.Request
}

func (s *stubLeaveRepo) Create(_ context.Context, _ *leave.Request) error { return nil }
func (s *stubLeaveRepo) GetByID(_ context.Context, _ uuid.UUID) (*leave.Request, error) {
	return nil, leave.ErrRequestNotFound
}
func (s *stubLeaveRepo) Update(_ context.Context, _ *leave.Request) error { return nil }
func (s *stubLeaveRepo) ListByUser(_ context.Context, _ uuid.UUID) ([]*leave.Request, error) {
	return nil, nil
}
func (s *stubLeaveRepo) ListByStatus(_ context.Context, _ leave.RequestStatus) ([]*leave.Request, error) {
	return nil, nil
}
func (s *stubLeaveRepo) HasOverlap(_ context.Context, _ uuid.UUID, _, _ time.Time) (bool, error) {
	return false, nil
}
func (s *stubLeaveRepo) ListApprovedInRange(_ context.Context, _, _ time.Time) ([]*leave.Request, error) {
	return s.approved, nil
}

type stubHolidayRepo struct {
	holidays []*holiday.Holiday
}

func (s *stubHolidayRepo) Create(_ context.Context, _ *holiday.Holiday) error { return nil }
func (s *stubHolidayRepo) Delete(_ context.Context, _ uuid.UUID) error        { return nil }
func (s *stubHolidayRepo) List(_ context.Context) ([]*holiday.Holiday, error) { return nil, nil }
func (s *stubHolidayRepo) GetByDate(_ context.Context, _ uuid.UUID, _ time.Time) (*holiday.Holiday, error) {
	return nil, holiday.ErrHolidayNotFound
}
func (s *stubHolidayRepo) ListRange(_ context.Context, _, _ time.Time) ([]*holiday.Holiday, error) {
	return s.holidays, nil
}

type stubBranchRepo struct {
	branch *branch.Branch
}

func (s *stubBranchRepo) Create(_ context.Context, _ *branch.Branch) error { return nil }
func (s *stubBranchRepo) Update(_ context.Context, _ *branch.Branch) error { return nil }
func (s *stubBranchRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }
func (s *stubBranchRepo) List(_ context.Context) ([]*branch.Branch, error) { return nil, nil }
func (s *stubBranchRepo) GetByID(_ context.Context, _ uuid.UUID) (*branch.Branch, error) {
	return nil, branch.ErrBranchNotFound
}
func (s *stubBranchRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*branch.Branch, error) {
	if s.branch == nil {
		return nil, branch.ErrBranchNotFound
	}
	return s.branch, nil
}

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func punched(userID uuid.UUID, day string, status attendance.Status, worked time.Duration) *attendance.Attendance {
	in := date(day).Add(3 * time.Hour)
	out := in.Add(worked)
	return &attendance.Attendance{
		ID:       uuid.New(),
		UserID:   userID,
		Date:     date(day),
		PunchIn:  &in,
		PunchOut: &out,
		Status:   status,
	}
}

// The fixture week is 2024-03-04 (Monday) through 2024-03-10 (Sunday),
// with Saturday and Sunday configured as the branch weekend.
func newReportFixture(userID uuid.UUID) (*stubAttendanceRepo, *stubUserRepo, *stubLeaveRepo, *stubHolidayRepo, *stubBranchRepo) {
	branchName := "Bengaluru"
	branchID := uuid.New()
	attendanceRepo := &stubAttendanceRepo{records: []*attendance.Attendance{
		punched(userID, "2024-03-04", attendance.StatusPresent, 9*time.Hour+30*time.Minute),
		punched(userID, "2024-03-05", attendance.StatusHalfDay, 4*time.Hour),
	}}
	userRepo := &stubUserRepo{users: []*user.User{{
		ID:         userID,
		Email:      "asha@example.com",
		FirstName:  "Asha",
		LastName:   "Menon",
		Role:       user.RoleEmployee,
		Salary:     decimal.NewFromInt(60000),
		Active:     true,
		BranchName: &branchName,
	}}}
	leaveRepo := &stubLeaveRepo{approved: []*leave.Request{{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      leave.TypeUnpaid,
		StartDate: date("2024-03-06"),
		EndDate:   date("2024-03-06"),
		Days:      1,
		Status:    leave.StatusApproved,
	}}}
	holidayRepo := &stubHolidayRepo{holidays: []*holiday.Holiday{{
		ID:       uuid.New(),
		BranchID: branchID,
		Name:     "Company Day",
		Date:     date("2024-03-07"),
	}}}
	branchRepo := &stubBranchRepo{branch: &branch.Branch{
		ID:          branchID,
		Name:        "Bengaluru",
		Code:        "BLR",
		Timezone:    "UTC",
		WeekendDays: []int{0, 6},
	}}
	return attendanceRepo, userRepo, leaveRepo, holidayRepo, branchRepo
}

func TestSummary_AggregatesWeek(t *testing.T) {
	userID := uuid.New()
	attendanceRepo, userRepo, leaveRepo, holidayRepo, branchRepo := newReportFixture(userID)

	svc := NewService(attendanceRepo, userRepo, leaveRepo, holidayRepo, branchRepo,
		Config{DaysPerMonth: 30, AbsencePenalty: 200}, logging.Discard())

	rows, err := svc.Summary(context.Background(), &report.Query{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-10",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Asha Menon", row.UserName)
	assert.Equal(t, "Bengaluru", row.BranchName)
	assert.Equal(t, 1, row.PresentDays)
	assert.Equal(t, 1, row.HalfDays)
	assert.Equal(t, 1, row.HolidayDays)
	assert.Equal(t, 2, row.WeekendDays)
	assert.Equal(t, 1, row.AbsentDays) // Friday the 8th has no record
	assert.Equal(t, 1.0, row.UnpaidLeaveDays)
	assert.Equal(t, 0.0, row.VacationLeaveDays)
	assert.Equal(t, 0.0, row.SickLeaveDays)
	assert.Equal(t, 0.0, row.CasualLeaveDays)
	assert.Equal(t, "13:30:00", row.TotalWorked)

	// 60000 / 30 = 2000 per day; (1 unpaid + 1 absent) * 2000 + 200.
	assert.Equal(t, "2000.00", row.SalaryPerDay)
	assert.Equal(t, "4200.00", row.Deduction)
}

func TestSummary_SkipsOrphanRows(t *testing.T) {
	userID := uuid.New()
	attendanceRepo, userRepo, leaveRepo, holidayRepo, branchRepo := newReportFixture(userID)
	attendanceRepo.records = append(attendanceRepo.records,
		punched(uuid.New(), "2024-03-04", attendance.StatusPresent, 8*time.Hour))

	svc := NewService(attendanceRepo, userRepo, leaveRepo, holidayRepo, branchRepo,
		Config{DaysPerMonth: 30, AbsencePenalty: 200}, logging.Discard())

	rows, err := svc.Summary(context.Background(), &report.Query{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-10",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, userID.String(), rows[0].UserID)
}

func TestSummary_LeaveTypeBuckets(t *testing.T) {
	userID := uuid.New()
	attendanceRepo, userRepo, _, holidayRepo, branchRepo := newReportFixture(userID)

	// A legacy row may carry a type the current vocabulary no longer
	// uses; it lands in the casual bucket.
	leaveRepo := &stubLeaveRepo{approved: []*leave.Request{
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      leave.TypeVacation,
			StartDate: date("2024-03-06"),
			EndDate:   date("2024-03-06"),
			Days:      1,
			Status:    leave.StatusApproved,
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      leave.Type("sabbatical"),
			StartDate: date("2024-03-08"),
			EndDate:   date("2024-03-08"),
			Days:      1,
			Status:    leave.StatusApproved,
		},
	}}

	svc := NewService(attendanceRepo, userRepo, leaveRepo, holidayRepo, branchRepo,
		Config{DaysPerMonth: 30, AbsencePenalty: 200}, logging.Discard())

	rows, err := svc.Summary(context.Background(), &report.Query{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-10",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 1.0, row.VacationLeaveDays)
	assert.Equal(t, 1.0, row.CasualLeaveDays)
	assert.Equal(t, 0.0, row.UnpaidLeaveDays)
}

func TestSummary_HolidayScopedToBranch(t *testing.T) {
	userID := uuid.New()
	attendanceRepo, userRepo, leaveRepo, holidayRepo, branchRepo := newReportFixture(userID)

	// Move the holiday onto another branch's calendar; the 7th should
	// now count as absent instead.
	holidayRepo.holidays[0].BranchID = uuid.New()

	svc := NewService(attendanceRepo, userRepo, leaveRepo, holidayRepo, branchRepo,
		Config{DaysPerMonth: 30, AbsencePenalty: 200}, logging.Discard())

	rows, err := svc.Summary(context.Background(), &report.Query{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-10",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 0, rows[0].HolidayDays)
	assert.Equal(t, 2, rows[0].AbsentDays)
}

func TestExportExcel(t *testing.T) {
	userID := uuid.New()
	attendanceRepo, userRepo, leaveRepo, holidayRepo, branchRepo := newReportFixture(userID)

	svc := NewService(attendanceRepo, userRepo, leaveRepo, holidayRepo, branchRepo,
		Config{DaysPerMonth: 30, AbsencePenalty: 200}, logging.Discard())

	data, filename, err := svc.ExportExcel(context.Background(), &report.Query{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "attendance_report_2024-03-04_2024-03-10.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Attendance Report"
	name, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Asha Menon", name)

	deduction, err := f.GetCellValue(sheet, "P2")
	require.NoError(t, err)
	assert.Equal(t, "4200.00", deduction)
}
