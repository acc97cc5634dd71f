package payroll

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/notification"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/payroll"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
)

// Config carries the salary arithmetic constants.
type Config struct {
	DaysPerMonth   int
	AbsencePenalty int
}

type service struct {
	repo           payroll.Repository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
	userRepo       user.Repository
	notifier       notification.Service
	config         Config
	logger         *slog.Logger
	now            func() time.Time
}

func NewService(
	repo payroll.Repository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
	userRepo user.Repository,
	notifier notification.Service,
	cfg Config,
	logger *slog.Logger,
) payroll.Service {
	return &service{
		repo:           repo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		config:         cfg,
		logger:         logger,
		now:            time.Now,
	}
}

func (s *service) Generate(ctx context.Context, period time.Time) ([]*payroll.PayslipResponse, error) {
	monthStart := time.Date(period.Year(), period.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	leaves, err := s.leaveRepo.ListApprovedInRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	unpaidByUser := make(map[uuid.UUID]float64)
	for _, req := range leaves {
		if req.Type != leave.TypeUnpaid {
			continue
		}
		unpaidByUser[req.UserID] += overlapDays(req, monthStart, monthEnd)
	}

	generatedAt := s.now()
	responses := make([]*payroll.PayslipResponse, 0, len(users))
	for _, u := range users {
		records, err := s.attendanceRepo.ListByUserAndRange(ctx, u.ID, monthStart, monthEnd)
		if err != nil {
			return nil, err
		}

		absentDays, halfDays := 0, 0
		for _, att := range records {
			switch att.Status {
			case attendance.StatusAbsent:
				absentDays++
			case attendance.StatusHalfDay:
				halfDays++
			}
		}

		basic, hra, allowances := payroll.SplitComponents(u.Salary)
		bonus := decimal.Zero
		gross := u.Salary.Add(bonus)
		salaryPerDay := payroll.SalaryPerDay(u.Salary, s.config.DaysPerMonth)
		deduction := payroll.Deduction(salaryPerDay, unpaidByUser[u.ID], absentDays, s.config.AbsencePenalty)
		netPay := gross.Sub(deduction)
		if netPay.IsNegative() {
			netPay = decimal.Zero
		}

		slip := &payroll.Payslip{
			ID:              uuid.New(),
			UserID:          u.ID,
			Period:          monthStart,
			BaseSalary:      u.Salary,
			Basic:           basic,
			HRA:             hra,
			Allowances:      allowances,
			Bonus:           bonus,
			Gross:           gross,
			SalaryPerDay:    salaryPerDay,
			UnpaidLeaveDays: unpaidByUser[u.ID],
			AbsentDays:      absentDays,
			HalfDays:        halfDays,
			Deduction:       deduction,
			NetPay:          netPay,
			Status:          payroll.StatusPending,
			GeneratedAt:     generatedAt,
		}

		if err := s.repo.Upsert(ctx, slip); err != nil {
			return nil, err
		}

		s.notifier.Notify([]uuid.UUID{u.ID},
			notification.TypePayslipReady,
			"Payslip generated",
			"Your payslip for "+monthStart.Format("2006-01")+" is ready.")

		name := u.FullName()
		slip.UserName = &name
		responses = append(responses, payroll.ToPayslipResponse(slip))
	}

	s.logger.Info("payroll generated",
		slog.String("period", monthStart.Format("2006-01")),
		slog.Int("payslips", len(responses)))

	return responses, nil
}

// overlapDays counts the request's days that fall inside the month. A
// half-day request contributes 0.5 when its date is in range.
func overlapDays(req *leave.Request, start, end time.Time) float64 {
	from := req.StartDate
	if from.Before(start) {
		from = start
	}
	to := req.EndDate
	if to.After(end) {
		to = end
	}
	if to.Before(from) {
		return 0
	}
	if req.HalfDay {
		return 0.5
	}
	return float64(to.Sub(from)/(24*time.Hour)) + 1
}

func (s *service) MarkProcessed(ctx context.Context, id uuid.UUID) (*payroll.PayslipResponse, error) {
	return s.advance(ctx, id, payroll.StatusProcessed)
}

func (s *service) MarkPaid(ctx context.Context, id uuid.UUID) (*payroll.PayslipResponse, error) {
	return s.advance(ctx, id, payroll.StatusPaid)
}

func (s *service) advance(ctx context.Context, id uuid.UUID, target payroll.Status) (*payroll.PayslipResponse, error) {
	slip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !slip.Status.CanTransitionTo(target) {
		return nil, payroll.ErrInvalidStatus
	}

	slip.Status = target
	if target == payroll.StatusPaid {
		paidAt := s.now()
		slip.PayDate = &paidAt
	}

	if err := s.repo.UpdateStatus(ctx, id, slip.Status, slip.PayDate); err != nil {
		return nil, err
	}

	s.logger.Info("payslip status updated",
		slog.String("payslip_id", id.String()),
		slog.String("status", string(target)))

	return payroll.ToPayslipResponse(slip), nil
}

func (s *service) GetForUser(ctx context.Context, userID uuid.UUID, period time.Time) (*payroll.PayslipResponse, error) {
	monthStart := time.Date(period.Year(), period.Month(), 1, 0, 0, 0, 0, time.UTC)

	slip, err := s.repo.GetByUserAndPeriod(ctx, userID, monthStart)
	if err != nil {
		return nil, err
	}

	return payroll.ToPayslipResponse(slip), nil
}

func (s *service) ListByPeriod(ctx context.Context, period time.Time) ([]*payroll.PayslipResponse, error) {
	monthStart := time.Date(period.Year(), period.Month(), 1, 0, 0, 0, 0, time.UTC)

	slips, err := s.repo.ListByPeriod(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	responses := make([]*payroll.PayslipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, payroll.ToPayslipResponse(slip))
	}

	return responses, nil
}
