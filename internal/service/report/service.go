package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/master/branch"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/master/holiday"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/payroll"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/report"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/timeutil"
)

// Config carries the salary arithmetic constants used in report rows.
type Config struct {
	DaysPerMonth   int
	AbsencePenalty int
}

type service struct {
	attendanceRepo attendance.Repository
	userRepo       user.Repository
	leaveRepo      leave.Repository
	holidayRepo    holiday.Repository
	branchRepo     branch.Repository
	config         Config
	logger         *slog.Logger
}

func NewService(
	attendanceRepo attendance.Repository,
	userRepo user.Repository,
	leaveRepo leave.Repository,
	holidayRepo holiday.Repository,
	branchRepo branch.Repository,
	cfg Config,
	logger *slog.Logger,
) report.Service {
	return &service{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		leaveRepo:      leaveRepo,
		holidayRepo:    holidayRepo,
		branchRepo:     branchRepo,
		config:         cfg,
		logger:         logger,
	}
}

func (s *service) Summary(ctx context.Context, query *report.Query) ([]*report.Row, error) {
	start, err := time.ParseInLocation(timeutil.DateLayout, query.StartDate, time.UTC)
	if err != nil {
		return nil, report.ErrValidationFailed
	}
	end, err := time.ParseInLocation(timeutil.DateLayout, query.EndDate, time.UTC)
	if err != nil {
		return nil, report.ErrValidationFailed
	}

	users, err := s.resolveUsers(ctx, query)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[uuid.UUID]*user.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	records, err := s.attendanceRepo.ListByRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	// Rows belonging to users that no longer exist (or fall outside
	// the query) are skipped, not fatal.
	recordsByUser := make(map[uuid.UUID]map[string]*attendance.Attendance)
	for _, att := range records {
		if _, ok := usersByID[att.UserID]; !ok {
			if query.UserID == nil {
				s.logger.Warn("skipping attendance row without a matching user",
					slog.String("attendance_id", att.ID.String()),
					slog.String("user_id", att.UserID.String()))
			}
			continue
		}
		byDate, ok := recordsByUser[att.UserID]
		if !ok {
			byDate = make(map[string]*attendance.Attendance)
			recordsByUser[att.UserID] = byDate
		}
		byDate[att.Date.Format(timeutil.DateLayout)] = att
	}

	leaves, err := s.leaveRepo.ListApprovedInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	leavesByUser := make(map[uuid.UUID][]*leave.Request)
	for _, req := range leaves {
		leavesByUser[req.UserID] = append(leavesByUser[req.UserID], req)
	}

	holidays, err := s.holidayRepo.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	// Holiday calendars are per branch, so the key carries both.
	holidaysByBranchDate := make(map[string]*holiday.Holiday, len(holidays))
	for _, h := range holidays {
		holidaysByBranchDate[holidayKey(h.BranchID, h.Date)] = h
	}

	rows := make([]*report.Row, 0, len(users))
	for _, u := range users {
		rows = append(rows, s.buildRow(ctx, u, start, end,
			recordsByUser[u.ID], leavesByUser[u.ID], holidaysByBranchDate))
	}

	return rows, nil
}

func (s *service) resolveUsers(ctx context.Context, query *report.Query) ([]*user.User, error) {
	if query.UserID == nil {
		return s.userRepo.ListActive(ctx)
	}

	id, err := uuid.Parse(*query.UserID)
	if err != nil {
		return nil, report.ErrValidationFailed
	}
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return []*user.User{u}, nil
}

// buildRow walks the user's branch-local calendar from start to end.
// Stored rows count by their status; empty dates count as leave,
// holiday, weekend or absence in that order.
func (s *service) buildRow(
	ctx context.Context,
	u *user.User,
	start, end time.Time,
	recordsByDate map[string]*attendance.Attendance,
	leaves []*leave.Request,
	holidaysByBranchDate map[string]*holiday.Holiday,
) *report.Row {
	row := &report.Row{
		UserID:   u.ID.String(),
		UserName: u.FullName(),
		Email:    u.Email,
	}
	if u.BranchName != nil {
		row.BranchName = *u.BranchName
	}

	var b *branch.Branch
	loc := time.UTC
	if branchForUser, err := s.branchRepo.GetByUserID(ctx, u.ID); err == nil {
		b = branchForUser
		loc = timeutil.LocationOrUTC(b.Timezone)
	}

	leaveTypeByDate := make(map[string]leave.Type)
	leaveDaysByDate := make(map[string]float64)
	for _, req := range leaves {
		for d := req.StartDate; !d.After(req.EndDate); d = d.AddDate(0, 0, 1) {
			key := d.Format(timeutil.DateLayout)
			leaveTypeByDate[key] = req.Type
			if req.HalfDay {
				leaveDaysByDate[key] = 0.5
			} else {
				leaveDaysByDate[key] = 1
			}
		}
	}

	localStart := timeutil.DayOf(time.Date(start.Year(), start.Month(), start.Day(), 12, 0, 0, 0, loc), loc)
	localEnd := timeutil.DayOf(time.Date(end.Year(), end.Month(), end.Day(), 12, 0, 0, 0, loc), loc)

	var totalWorked time.Duration
	for _, day := range timeutil.DateSpine(localStart, localEnd, loc) {
		key := day.Format(timeutil.DateLayout)

		if att, ok := recordsByDate[key]; ok {
			totalWorked += att.WorkedDuration()
			switch att.Status {
			case attendance.StatusPresent:
				row.PresentDays++
			case attendance.StatusAbsent:
				row.AbsentDays++
			case attendance.StatusHalfDay:
				row.HalfDays++
			case attendance.StatusHoliday:
				row.HolidayDays++
			case attendance.StatusOverTime:
				row.OvertimeDays++
			case attendance.StatusWeekend:
				row.WeekendDays++
			}
			continue
		}

		if typ, ok := leaveTypeByDate[key]; ok {
			switch typ.Bucket() {
			case leave.TypeVacation:
				row.VacationLeaveDays += leaveDaysByDate[key]
			case leave.TypeSick:
				row.SickLeaveDays += leaveDaysByDate[key]
			case leave.TypeUnpaid:
				row.UnpaidLeaveDays += leaveDaysByDate[key]
			default:
				row.CasualLeaveDays += leaveDaysByDate[key]
			}
			continue
		}

		if b != nil {
			if h, ok := holidaysByBranchDate[holidayKey(b.ID, day)]; ok && !h.Optional {
				row.HolidayDays++
				continue
			}
		}

		if b != nil && b.IsWeekend(day.Weekday()) {
			row.WeekendDays++
			continue
		}

		row.AbsentDays++
	}

	row.TotalWorked = timeutil.FormatDuration(totalWorked)

	salaryPerDay := payroll.SalaryPerDay(u.Salary, s.config.DaysPerMonth)
	row.SalaryPerDay = salaryPerDay.StringFixed(2)
	row.Deduction = payroll.Deduction(salaryPerDay, row.UnpaidLeaveDays, row.AbsentDays, s.config.AbsencePenalty).StringFixed(2)

	return row
}

func holidayKey(branchID uuid.UUID, date time.Time) string {
	return branchID.String() + "|" + date.Format(timeutil.DateLayout)
}

var exportHeaders = []string{
	"Employee", "Email", "Branch", "Present", "Absent", "Half Day", "Holiday",
	"Weekend", "Overtime", "Vacation Leave", "Sick Leave", "Casual Leave",
	"Unpaid Leave", "Total Worked", "Salary Per Day", "Deduction",
}

func (s *service) ExportExcel(ctx context.Context, query *report.Query) ([]byte, string, error) {
	rows, err := s.Summary(ctx, query)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, row := range rows {
		values := []interface{}{
			row.UserName, row.Email, row.BranchName, row.PresentDays, row.AbsentDays,
			row.HalfDays, row.HolidayDays, row.WeekendDays, row.OvertimeDays,
			row.VacationLeaveDays, row.SickLeaveDays, row.CasualLeaveDays,
			row.UnpaidLeaveDays, row.TotalWorked,
			row.SalaryPerDay, row.Deduction,
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance_report_%s_%s.xlsx", query.StartDate, query.EndDate)
	return buf.Bytes(), filename, nil
}
