package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/notification"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/payroll"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/logging"
)

type memPayrollRepo struct {
	slips map[string]*payroll.Payslip
}

func payslipKey(userID uuid.UUID, period time.Time) string {
	return userID.String() + "|" + period.Format("2006-01")
}

func (m *memPayrollRepo) Upsert(_ context.Context, p *payroll.Payslip) error {
	stored := *p
	m.slips[payslipKey(p.UserID, p.Period)] = &stored
	return nil
}

func (m *memPayrollRepo) GetByUserAndPeriod(_ context.Context, userID uuid.UUID, period time.Time) (*payroll.Payslip, error) {
	if slip, ok := m.slips[payslipKey(userID, period)]; ok {
		return slip, nil
	}
	return nil, payroll.ErrPayslipNotFound
}

func (m *memPayrollRepo) GetByID(_ context.Context, id uuid.UUID) (*payroll.Payslip, error) {
	for _, slip := range m.slips {
		if slip.ID == id {
			return slip, nil
		}
	}
	return nil, payroll.ErrPayslipNotFound
}

func (m *memPayrollRepo) UpdateStatus(_ context.Context, id uuid.UUID, status payroll.Status, payDate *time.Time) error {
	for _, slip := range m.slips {
		if slip.ID == id {
			slip.Status = status
			slip.PayDate = payDate
			return nil
		}
	}
	return payroll.ErrPayslipNotFound
}

func (m *memPayrollRepo) ListByPeriod(_ context.Context, period time.Time) ([]*payroll.Payslip, error) {
	var result []*payroll.Payslip
	for _, slip := range m.slips {
		if slip.Period.Equal(period) {
			result = append(result, slip)
		}
	}
	return result, nil
}

type stubAttendanceRepo struct {
	byUser map[uuid.UUID][]*attendance.Attendance
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
func (s *stubAttendanceRepo) ListByUserAndRange(_ context.Context, userID uuid.UUID, _, _ time.Time) ([]*attendance.Attendance, error) {
	return s.byUser[userID], nil
}
func (s *stubAttendanceRepo) ListByRange(_ context.Context, _, _ time.Time) ([]*attendance.Attendance, error) {
	return nil, nil
}
func (s *stubAttendanceRepo) ListUserIDsWithoutRecord(_ context.Context, _ time.Time) ([]uuid.UUID, error) {
	return nil, nil
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

type stubUserRepo struct {
	users []*user.User
}

func (s *stubUserRepo) Create(_ context.Context, _ *user.User) error { return nil }
func (s *stubUserRepo) Update(_ context.Context, _ *user.User) error { return nil }
func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (s *stubUserRepo) GetByID(_ context.Context, _ uuid.UUID) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (s *stubUserRepo) ListActive(_ context.Context) ([]*user.User, error) { return s.users, nil }
func (s *stubUserRepo) ListIDsByRoles(_ context.Context, _ []user.Role) ([]uuid.UUID, error) {
	return nil, nil
}
func (s *stubUserRepo) AdjustLeaveBalance(_ context.Context, _ uuid.UUID, _ float64) (float64, error) {
	return 0, nil
}

type recordedNote struct {
	userIDs []uuid.UUID
	typ     notification.Type
}

type stubNotifier struct {
	notes []recordedNote
}

func (s *stubNotifier) Notify(userIDs []uuid.UUID, typ notification.Type, _, _ string) {
	s.notes = append(s.notes, recordedNote{userIDs: userIDs, typ: typ})
}
func (s *stubNotifier) NotifyRoles(_ []user.Role, _ notification.Type, _, _ string) {}
func (s *stubNotifier) List(_ context.Context, _ uuid.UUID, _ int) ([]*notification.NotificationResponse, error) {
	return nil, nil
}
func (s *stubNotifier) UnreadCount(_ context.Context, _ uuid.UUID) (int, error) { return 0, nil }
func (s *stubNotifier) MarkRead(_ context.Context, _, _ uuid.UUID) error        { return nil }
func (s *stubNotifier) MarkAllRead(_ context.Context, _ uuid.UUID) error        { return nil }
func (s *stubNotifier) Shutdown(_ context.Context) error                        { return nil }

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func TestGenerate_DeductsUnpaidLeaveAndAbsences(t *testing.T) {
	userID := uuid.New()

	repo := &memPayrollRepo{slips: make(map[string]*payroll.Payslip)}
	attendanceRepo := &stubAttendanceRepo{byUser: map[uuid.UUID][]*attendance.Attendance{
		userID: {
			{ID: uuid.New(), UserID: userID, Date: date("2024-03-04"), Status: attendance.StatusPresent},
			{ID: uuid.New(), UserID: userID, Date: date("2024-03-05"), Status: attendance.StatusAbsent},
			{ID: uuid.New(), UserID: userID, Date: date("2024-03-06"), Status: attendance.StatusAbsent},
			{ID: uuid.New(), UserID: userID, Date: date("2024-03-07"), Status: attendance.StatusHalfDay},
		},
	}}
	leaveRepo := &stubLeaveRepo{approved: []*leave.Request{{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      leave.TypeUnpaid,
		StartDate: date("2024-03-11"),
		EndDate:   date("2024-03-12"),
		Days:      2,
		Status:    leave.StatusApproved,
	}}}
	userRepo := &stubUserRepo{users: []*user.User{{
		ID:        userID,
		FirstName: "Asha",
		LastName:  "Menon",
		Salary:    decimal.NewFromInt(60000),
		Active:    true,
	}}}

	svc := NewService(repo, attendanceRepo, leaveRepo, userRepo, &stubNotifier{},
		Config{DaysPerMonth: 30, AbsencePenalty: 200}, logging.Discard())

	slips, err := svc.Generate(context.Background(), date("2024-03-15"))
	require.NoError(t, err)
	require.Len(t, slips, 1)

	slip := slips[0]
	assert.Equal(t, "2024-03", slip.Period)
	assert.Equal(t, "2000.00", slip.SalaryPerDay)
	assert.Equal(t, 2.0, slip.UnpaidLeaveDays)
	assert.Equal(t, 2, slip.AbsentDays)
	assert.Equal(t, 1, slip.HalfDays)
	// (2 unpaid + 2 absent) * 2000 + 200 flat.
	assert.Equal(t, "8200.00", slip.Deduction)
	assert.Equal(t, "51800.00", slip.NetPay)

	assert.Equal(t, "30000.00", slip.Basic)
	assert.Equal(t, "12000.00", slip.HRA)
	assert.Equal(t, "18000.00", slip.Allowances)
	assert.Equal(t, "0.00", slip.Bonus)
	assert.Equal(t, "60000.00", slip.Gross)
	assert.Equal(t, payroll.StatusPending, slip.Status)
	assert.Nil(t, slip.PayDate)
}

func TestGenerate_NotifiesEachUser(t *testing.T) {
	userID := uuid.New()

	repo := &memPayrollRepo{slips: make(map[string]*payroll.Payslip)}
	attendanceRepo := &stubAttendanceRepo{byUser: map[uuid.UUID][]*attendance.Attendance{}}
	userRepo := &stubUserRepo{users: []*user.User{{
		ID:     userID,
		Salary: decimal.NewFromInt(30000),
		Active: true,
	}}}
	notifier := &stubNotifier{}

	svc := NewService(repo, attendanceRepo, &stubLeaveRepo{}, userRepo, notifier,
		Config{DaysPerMonth: 30, AbsencePenalty: 200}, logging.Discard())

	_, err := svc.Generate(context.Background(), date("2024-03-01"))
	require.NoError(t, err)

	require.Len(t, notifier.notes, 1)
	assert.Equal(t, notification.TypePayslipReady, notifier.notes[0].typ)
	assert.Equal(t, []uuid.UUID{userID}, notifier.notes[0].userIDs)
}

func TestLifecycle_PendingToProcessedToPaid(t *testing.T) {
	userID := uuid.New()

	repo := &memPayrollRepo{slips: make(map[string]*payroll.Payslip)}
	attendanceRepo := &stubAttendanceRepo{byUser: map[uuid.UUID][]*attendance.Attendance{}}
	userRepo := &stubUserRepo{users: []*user.User{{
		ID:     userID,
		Salary: decimal.NewFromInt(30000),
		Active: true,
	}}}

	svc := NewService(repo, attendanceRepo, &stubLeaveRepo{}, userRepo, &stubNotifier{},
		Config{DaysPerMonth: 30, AbsencePenalty: 200}, logging.Discard())

	paidAt := date("2024-04-05")
	svc.(*service).now = func() time.Time { return paidAt }

	slips, err := svc.Generate(context.Background(), date("2024-03-01"))
	require.NoError(t, err)
	require.Len(t, slips, 1)

	id, err := uuid.Parse(slips[0].ID)
	require.NoError(t, err)

	// Paying a pending slip skips a state and is rejected.
	_, err = svc.MarkPaid(context.Background(), id)
	assert.ErrorIs(t, err, payroll.ErrInvalidStatus)

	processed, err := svc.MarkProcessed(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusProcessed, processed.Status)
	assert.Nil(t, processed.PayDate)

	paid, err := svc.MarkPaid(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusPaid, paid.Status)
	require.NotNil(t, paid.PayDate)
	assert.Equal(t, "2024-04-05", *paid.PayDate)

	// A paid slip is terminal.
	_, err = svc.MarkProcessed(context.Background(), id)
	assert.ErrorIs(t, err, payroll.ErrInvalidStatus)
}

func TestGenerate_IsIdempotent(t *testing.T) {
	userID := uuid.New()

	repo := &memPayrollRepo{slips: make(map[string]*payroll.Payslip)}
	attendanceRepo := &stubAttendanceRepo{byUser: map[uuid.UUID][]*attendance.Attendance{}}
	userRepo := &stubUserRepo{users: []*user.User{{
		ID:     userID,
		Salary: decimal.NewFromInt(30000),
		Active: true,
	}}}

	svc := NewService(repo, attendanceRepo, &stubLeaveRepo{}, userRepo, &stubNotifier{},
		Config{DaysPerMonth: 30, AbsencePenalty: 200}, logging.Discard())

	_, err := svc.Generate(context.Background(), date("2024-03-01"))
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), date("2024-03-31"))
	require.NoError(t, err)

	assert.Len(t, repo.slips, 1)

	slip, err := svc.GetForUser(context.Background(), userID, date("2024-03-15"))
	require.NoError(t, err)
	// Only the flat penalty applies with no absences or unpaid leave.
	assert.Equal(t, "200.00", slip.Deduction)
}

func TestGenerate_NetPayFloorsAtZero(t *testing.T) {
	userID := uuid.New()

	repo := &memPayrollRepo{slips: make(map[string]*payroll.Payslip)}
	attendanceRepo := &stubAttendanceRepo{byUser: map[uuid.UUID][]*attendance.Attendance{}}
	leaveRepo := &stubLeaveRepo{approved: []*leave.Request{{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      leave.TypeUnpaid,
		StartDate: date("2024-03-01"),
		EndDate:   date("2024-03-31"),
		Days:      31,
		Status:    leave.StatusApproved,
	}}}
	userRepo := &stubUserRepo{users: []*user.User{{
		ID:     userID,
		Salary: decimal.NewFromInt(3000),
		Active: true,
	}}}

	svc := NewService(repo, attendanceRepo, leaveRepo, userRepo, &stubNotifier{},
		Config{DaysPerMonth: 30, AbsencePenalty: 200}, logging.Discard())

	slips, err := svc.Generate(context.Background(), date("2024-03-01"))
	require.NoError(t, err)
	require.Len(t, slips, 1)
	assert.Equal(t, "0.00", slips[0].NetPay)
}
