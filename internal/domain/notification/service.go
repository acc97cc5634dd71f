package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
)

// Service dispatches notifications asynchronously. Enqueue methods
// never block the caller and never return delivery errors; failures
// are logged by the worker.
type Service interface {
	Notify(userIDs []uuid.UUID, typ Type, title, message string)
	// NotifyRoles fans the message out to every active user holding one
	// of the given roles.
	NotifyRoles(roles []user.Role, typ Type, title, message string)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]*NotificationResponse, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	// Shutdown flushes queued notifications and stops the workers.
	Shutdown(ctx context.Context) error
}
