package user

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
	ListActive(ctx context.Context) ([]*UserResponse, error)
	// Deactivate disables the account. Inactive users cannot log in or
	// punch and are skipped by payroll and the absentee sweep.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
