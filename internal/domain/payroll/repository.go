package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	// Upsert replaces the payslip for (user, period) so regeneration is
	// idempotent.
	Upsert(ctx context.Context, p *Payslip) error
	GetByID(ctx context.Context, id uuid.UUID) (*Payslip, error)
	GetByUserAndPeriod(ctx context.Context, userID uuid.UUID, period time.Time) (*Payslip, error)
	ListByPeriod(ctx context.Context, period time.Time) ([]*Payslip, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, payDate *time.Time) error
}
