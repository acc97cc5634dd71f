package leave

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id uuid.UUID) (*Request, error)
	Update(ctx context.Context, req *Request) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Request, error)
	ListByStatus(ctx context.Context, status RequestStatus) ([]*Request, error)
	// HasOverlap reports whether the user already has a pending or
	// approved request intersecting [start, end].
	HasOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time) (bool, error)
	// ListApprovedInRange returns approved requests whose span touches
	// [start, end], used by report aggregation.
	ListApprovedInRange(ctx context.Context, start, end time.Time) ([]*Request, error)
}
