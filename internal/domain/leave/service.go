package leave

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreateRequest) (*RequestResponse, error)
	Review(ctx context.Context, reviewerID, requestID uuid.UUID, req *ReviewRequest) (*RequestResponse, error)
	Cancel(ctx context.Context, userID, requestID uuid.UUID) error
	ListMine(ctx context.Context, userID uuid.UUID) ([]*RequestResponse, error)
	ListPending(ctx context.Context) ([]*RequestResponse, error)
	AttachDocument(ctx context.Context, userID, requestID uuid.UUID, url string) (*RequestResponse, error)
}
