package report

import (
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/validator"
)

type Query struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	UserID    *string `json:"user_id,omitempty"`
}

func (q *Query) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "Start date is required",
		})
	} else if !validator.IsValidDate(q.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "Start date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(q.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "End date is required",
		})
	} else if !validator.IsValidDate(q.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "End date must be in YYYY-MM-DD format",
		})
	}

	return errs
}

// Row is one user's aggregated attendance over the queried range. Day
// counts cover every date in the user's branch-local calendar span; a
// date with no stored record counts by its derived status.
type Row struct {
	UserID            string  `json:"user_id"`
	UserName          string  `json:"user_name"`
	Email             string  `json:"email"`
	BranchName        string  `json:"branch_name"`
	PresentDays       int     `json:"present_days"`
	AbsentDays        int     `json:"absent_days"`
	HalfDays          int     `json:"half_days"`
	HolidayDays       int     `json:"holiday_days"`
	WeekendDays       int     `json:"weekend_days"`
	OvertimeDays      int     `json:"overtime_days"`
	VacationLeaveDays float64 `json:"vacation_leave_days"`
	SickLeaveDays     float64 `json:"sick_leave_days"`
	CasualLeaveDays   float64 `json:"casual_leave_days"`
	UnpaidLeaveDays   float64 `json:"unpaid_leave_days"`
	TotalWorked       string  `json:"total_worked"` // HH:mm:ss
	SalaryPerDay      string  `json:"salary_per_day"`
	Deduction         string  `json:"deduction"`
}
