package payroll

import "errors"

var (
	ErrPayslipNotFound  = errors.New("payslip not found")
	ErrInvalidStatus    = errors.New("invalid payslip status transition")
	ErrValidationFailed = errors.New("validation failed")
)
