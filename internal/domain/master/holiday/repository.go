package holiday

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, h *Holiday) error
	GetByDate(ctx context.Context, branchID uuid.UUID, date time.Time) (*Holiday, error)
	// ListRange returns every branch's holidays in the span; callers
	// filter by BranchID.
	ListRange(ctx context.Context, start, end time.Time) ([]*Holiday, error)
	List(ctx context.Context) ([]*Holiday, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
