package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/payroll"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/database"
)

type PayrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) *PayrollRepository {
	return &PayrollRepository{db: db}
}

const payslipColumns = `id, user_id, period, base_salary, basic, hra, allowances, bonus, gross,
	salary_per_day, unpaid_leave_days, absent_days, half_days, deduction, net_pay, status,
	pay_date, generated_at`

func (r *PayrollRepository) Upsert(ctx context.Context, p *payroll.Payslip) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (id, user_id, period, base_salary, basic, hra, allowances, bonus,
			gross, salary_per_day, unpaid_leave_days, absent_days, half_days, deduction,
			net_pay, status, pay_date, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (user_id, period) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			basic = EXCLUDED.basic,
			hra = EXCLUDED.hra,
			allowances = EXCLUDED.allowances,
			bonus = EXCLUDED.bonus,
			gross = EXCLUDED.gross,
			salary_per_day = EXCLUDED.salary_per_day,
			unpaid_leave_days = EXCLUDED.unpaid_leave_days,
			absent_days = EXCLUDED.absent_days,
			half_days = EXCLUDED.half_days,
			deduction = EXCLUDED.deduction,
			net_pay = EXCLUDED.net_pay,
			status = EXCLUDED.status,
			pay_date = EXCLUDED.pay_date,
			generated_at = EXCLUDED.generated_at`

	_, err := q.Exec(ctx, query,
		p.ID, p.UserID, p.Period, p.BaseSalary, p.Basic, p.HRA, p.Allowances, p.Bonus,
		p.Gross, p.SalaryPerDay, p.UnpaidLeaveDays, p.AbsentDays, p.HalfDays, p.Deduction,
		p.NetPay, p.Status, p.PayDate, p.GeneratedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert payslip: %w", err)
	}

	return nil
}

func (r *PayrollRepository) GetByUserAndPeriod(ctx context.Context, userID uuid.UUID, period time.Time) (*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM payslips WHERE user_id = $1 AND period = $2`, payslipColumns)

	var p payroll.Payslip
	err := q.QueryRow(ctx, query, userID, period).Scan(
		&p.ID, &p.UserID, &p.Period, &p.BaseSalary, &p.Basic, &p.HRA, &p.Allowances,
		&p.Bonus, &p.Gross, &p.SalaryPerDay, &p.UnpaidLeaveDays, &p.AbsentDays,
		&p.HalfDays, &p.Deduction, &p.NetPay, &p.Status, &p.PayDate, &p.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("failed to get payslip: %w", err)
	}

	return &p, nil
}

func (r *PayrollRepository) ListByPeriod(ctx context.Context, period time.Time) ([]*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, u.first_name || ' ' || u.last_name
		FROM payslips p
		JOIN users u ON u.id = p.user_id
		WHERE p.period = $1
		ORDER BY u.first_name, u.last_name`,
		prefixColumns("p", payslipColumns))

	rows, err := q.Query(ctx, query, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var result []*payroll.Payslip
	for rows.Next() {
		var p payroll.Payslip
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Period, &p.BaseSalary, &p.Basic, &p.HRA, &p.Allowances,
			&p.Bonus, &p.Gross, &p.SalaryPerDay, &p.UnpaidLeaveDays, &p.AbsentDays,
			&p.HalfDays, &p.Deduction, &p.NetPay, &p.Status, &p.PayDate, &p.GeneratedAt,
			&p.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		result = append(result, &p)
	}

	return result, rows.Err()
}

func (r *PayrollRepository) GetByID(ctx context.Context, id uuid.UUID) (*payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM payslips WHERE id = $1`, payslipColumns)

	var p payroll.Payslip
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.Period, &p.BaseSalary, &p.Basic, &p.HRA, &p.Allowances,
		&p.Bonus, &p.Gross, &p.SalaryPerDay, &p.UnpaidLeaveDays, &p.AbsentDays,
		&p.HalfDays, &p.Deduction, &p.NetPay, &p.Status, &p.PayDate, &p.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPayslipNotFound
		}
		return nil, fmt.Errorf("failed to get payslip: %w", err)
	}

	return &p, nil
}

func (r *PayrollRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status payroll.Status, payDate *time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE payslips SET status = $1, pay_date = $2 WHERE id = $3`,
		status, payDate, id)
	if err != nil {
		return fmt.Errorf("failed to update payslip status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}

	return nil
}
