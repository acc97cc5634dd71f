package payroll

import (
	"time"

	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/validator"
)

type GenerateRequest struct {
	Month string `json:"month"` // YYYY-MM
}

func (r *GenerateRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "Month is required",
		})
	} else if _, err := time.Parse("2006-01", r.Month); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "Month must be in YYYY-MM format",
		})
	}

	return errs
}

type PayslipResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	UserName        *string `json:"user_name,omitempty"`
	Period          string  `json:"period"`
	BaseSalary      string  `json:"base_salary"`
	Basic           string  `json:"basic"`
	HRA             string  `json:"hra"`
	Allowances      string  `json:"allowances"`
	Bonus           string  `json:"bonus"`
	Gross           string  `json:"gross"`
	SalaryPerDay    string  `json:"salary_per_day"`
	UnpaidLeaveDays float64 `json:"unpaid_leave_days"`
	AbsentDays      int     `json:"absent_days"`
	HalfDays        int     `json:"half_days"`
	Deduction       string  `json:"deduction"`
	NetPay          string  `json:"net_pay"`
	Status          Status  `json:"status"`
	PayDate         *string `json:"pay_date,omitempty"`
}

func ToPayslipResponse(p *Payslip) *PayslipResponse {
	resp := &PayslipResponse{
		ID:              p.ID.String(),
		UserID:          p.UserID.String(),
		UserName:        p.UserName,
		Period:          p.Period.Format("2006-01"),
		BaseSalary:      p.BaseSalary.StringFixed(2),
		Basic:           p.Basic.StringFixed(2),
		HRA:             p.HRA.StringFixed(2),
		Allowances:      p.Allowances.StringFixed(2),
		Bonus:           p.Bonus.StringFixed(2),
		Gross:           p.Gross.StringFixed(2),
		SalaryPerDay:    p.SalaryPerDay.StringFixed(2),
		UnpaidLeaveDays: p.UnpaidLeaveDays,
		AbsentDays:      p.AbsentDays,
		HalfDays:        p.HalfDays,
		Deduction:       p.Deduction.StringFixed(2),
		NetPay:          p.NetPay.StringFixed(2),
		Status:          p.Status,
	}
	if p.PayDate != nil {
		paid := p.PayDate.Format("2006-01-02")
		resp.PayDate = &paid
	}
	return resp
}
