package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	// Generate computes payslips for every active user for the month
	// and stores them, replacing any earlier run.
	Generate(ctx context.Context, period time.Time) ([]*PayslipResponse, error)
	// MarkProcessed and MarkPaid advance the slip through the
	// pending, processed, paid sequence; paying stamps the pay date.
	MarkProcessed(ctx context.Context, id uuid.UUID) (*PayslipResponse, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*PayslipResponse, error)
	GetForUser(ctx context.Context, userID uuid.UUID, period time.Time) (*PayslipResponse, error)
	ListByPeriod(ctx context.Context, period time.Time) ([]*PayslipResponse, error)
	// ExportExcel renders the period's payslips as an xlsx workbook and
	// returns the file bytes with a suggested filename.
	ExportExcel(ctx context.Context, period time.Time) ([]byte, string, error)
}
