package payroll

import "github.com/shopspring/decimal"

// SplitComponents breaks the monthly base salary into pay components
// on the standard 50/20/30 structure. Allowances take the remainder
// so the three always sum back to the base salary.
func SplitComponents(salary decimal.Decimal) (basic, hra, allowances decimal.Decimal) {
	basic = salary.Mul(decimal.NewFromFloat(0.5))
	hra = salary.Mul(decimal.NewFromFloat(0.2))
	allowances = salary.Sub(basic).Sub(hra)
	return basic, hra, allowances
}

// SalaryPerDay divides the monthly salary by the fixed day divisor.
func SalaryPerDay(salary decimal.Decimal, daysPerMonth int) decimal.Decimal {
	if daysPerMonth <= 0 {
		return decimal.Zero
	}
	return salary.Div(decimal.NewFromInt(int64(daysPerMonth)))
}

// Deduction charges unpaid leave and absences at the per-day rate and
// adds the flat penalty on top.
func Deduction(salaryPerDay decimal.Decimal, unpaidLeaveDays float64, absentDays int, penalty int) decimal.Decimal {
	chargedDays := decimal.NewFromFloat(unpaidLeaveDays).Add(decimal.NewFromInt(int64(absentDays)))
	return salaryPerDay.Mul(chargedDays).Add(decimal.NewFromInt(int64(penalty)))
}
