package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/notification"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/logging"
)

type capturingRepo struct {
	mu       sync.Mutex
	inserted []*notification.Notification
}

func (r *capturingRepo) CreateBatch(_ context.Context, notifications []*notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inserted = append(r.inserted, notifications...)
	return nil
}

func (r *capturingRepo) ListByUser(_ context.Context, _ uuid.UUID, _ int) ([]*notification.Notification, error) {
	return nil, nil
}
func (r *capturingRepo) CountUnread(_ context.Context, _ uuid.UUID) (int, error) { return 0, nil }
func (r *capturingRepo) MarkRead(_ context.Context, _, _ uuid.UUID) error        { return nil }
func (r *capturingRepo) MarkAllRead(_ context.Context, _ uuid.UUID) error        { return nil }

func (r *capturingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inserted)
}

type roleListRepo struct {
	ids []uuid.UUID
}

func (r *roleListRepo) Create(_ context.Context, _ *user.User) error { return nil }
func (r *roleListRepo) Update(_ context.Context, _ *user.User) error { return nil }
func (r *roleListRepo) GetByID(_ context.Context, _ uuid.UUID) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (r *roleListRepo) GetByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (r *roleListRepo) ListActive(_ context.Context) ([]*user.User, error) { return nil, nil }
func (r *roleListRepo) ListIDsByRoles(_ context.Context, _ []user.Role) ([]uuid.UUID, error) {
	return r.ids, nil
}
func (r *roleListRepo) AdjustLeaveBalance(_ context.Context, _ uuid.UUID, _ float64) (float64, error) {
	return 0, nil
}

func TestNotify_FlushesOnShutdown(t *testing.T) {
	repo := &capturingRepo{}
	svc := NewService(repo, &roleListRepo{}, Config{WorkerCount: 1}, logging.Discard())

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	svc.Notify(ids, notification.TypeMarkedAbsent, "Marked absent", "No attendance recorded.")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, svc.Shutdown(ctx))

	assert.Equal(t, 3, repo.count())
}

func TestNotify_FlushesWhenBatchFills(t *testing.T) {
	repo := &capturingRepo{}
	svc := NewService(repo, &roleListRepo{}, Config{WorkerCount: 1, BatchSize: 2, FlushInterval: time.Hour}, logging.Discard())
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = svc.Shutdown(ctx)
	}()

	svc.Notify([]uuid.UUID{uuid.New(), uuid.New()}, notification.TypeLeaveSubmitted, "Leave requested", "A request awaits review.")

	require.Eventually(t, func() bool { return repo.count() == 2 },
		2*time.Second, 10*time.Millisecond)
}

func TestNotifyRoles_FansOut(t *testing.T) {
	repo := &capturingRepo{}
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	svc := NewService(repo, &roleListRepo{ids: ids}, Config{WorkerCount: 1}, logging.Discard())

	svc.NotifyRoles([]user.Role{user.RoleAdmin, user.RoleHR},
		notification.TypeOvertimeWorked, "Overtime worked on holiday", "An employee worked a holiday.")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, svc.Shutdown(ctx))

	assert.Equal(t, 2, repo.count())
}
