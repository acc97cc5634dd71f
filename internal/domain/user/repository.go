package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
	ListActive(ctx context.Context) ([]*User, error)
	ListIDsByRoles(ctx context.Context, roles []Role) ([]uuid.UUID, error)
	// AdjustLeaveBalance applies a signed delta to the stored balance
	// and returns the new value.
	AdjustLeaveBalance(ctx context.Context, id uuid.UUID, delta float64) (float64, error)
}
