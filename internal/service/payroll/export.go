package payroll

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"Employee", "Period", "Base Salary", "Basic", "HRA", "Allowances", "Bonus",
	"Gross", "Salary Per Day", "Unpaid Leave Days", "Absent Days", "Half Days",
	"Deduction", "Net Pay", "Status",
}

func (s *service) ExportExcel(ctx context.Context, period time.Time) ([]byte, string, error) {
	slips, err := s.ListByPeriod(ctx, period)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payroll Report"
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

	for i, slip := range slips {
		name := slip.UserID
		if slip.UserName != nil {
			name = *slip.UserName
		}
		values := []interface{}{
			name, slip.Period, slip.BaseSalary, slip.Basic, slip.HRA,
			slip.Allowances, slip.Bonus, slip.Gross, slip.SalaryPerDay,
			slip.UnpaidLeaveDays, slip.AbsentDays, slip.HalfDays,
			slip.Deduction, slip.NetPay, string(slip.Status),
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

	filename := fmt.Sprintf("payroll_report_%s.xlsx", period.Format("2006-01"))
	return buf.Bytes(), filename, nil
}
