package branch

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, b *Branch) error
	GetByID(ctx context.Context, id uuid.UUID) (*Branch, error)
	List(ctx context.Context) ([]*Branch, error)
	Update(ctx context.Context, b *Branch) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GetByUserID resolves the branch a user is assigned to, used for
	// timezone lookups on every punch.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Branch, error)
}
