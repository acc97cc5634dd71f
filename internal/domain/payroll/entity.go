package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusProcessed Status = "processed"
	StatusPaid      Status = "paid"
)

// CanTransitionTo enforces the pending -> processed -> paid order.
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusProcessed
	case StatusProcessed:
		return target == StatusPaid
	}
	return false
}

// Payslip is one user's computed pay for a calendar month. Period is
// the first day of the month. Monetary values use decimal to keep the
// arithmetic exact. Basic, HRA and Allowances split the base salary;
// Gross adds the bonus on top. PayDate is set when the slip is paid.
type Payslip struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Period          time.Time
	BaseSalary      decimal.Decimal
	Basic           decimal.Decimal
	HRA             decimal.Decimal
	Allowances      decimal.Decimal
	Bonus           decimal.Decimal
	Gross           decimal.Decimal
	SalaryPerDay    decimal.Decimal
	UnpaidLeaveDays float64
	AbsentDays      int
	HalfDays        int
	Deduction       decimal.Decimal
	NetPay          decimal.Decimal
	Status          Status
	PayDate         *time.Time
	GeneratedAt     time.Time

	// Join
	UserName *string
}
