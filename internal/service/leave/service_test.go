package leave

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/notification"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/logging"
)

type fakeLeaveRepo struct {
	requests map[uuid.UUID]*leave.Request
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[uuid.UUID]*leave.Request)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, req *leave.Request) error {
	stored := *req
	f.requests[req.ID] = &stored
	return nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id uuid.UUID) (*leave.Request, error) {
	if req, ok := f.requests[id]; ok {
		copied := *req
		return &copied, nil
	}
	return nil, leave.ErrRequestNotFound
}

func (f *fakeLeaveRepo) Update(_ context.Context, req *leave.Request) error {
	if _, ok := f.requests[req.ID]; !ok {
		return leave.ErrRequestNotFound
	}
	stored := *req
	f.requests[req.ID] = &stored
	return nil
}

func (f *fakeLeaveRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*leave.Request, error) {
	var result []*leave.Request
	for _, req := range f.requests {
		if req.UserID == userID {
			result = append(result, req)
		}
	}
	return result, nil
}

func (f *fakeLeaveRepo) ListByStatus(_ context.Context, status leave.RequestStatus) ([]*leave.Request, error) {
	var result []*leave.Request
	for _, req := range f.requests {
		if req.Status == status {
			result = append(result, req)
		}
	}
	return result, nil
}

func (f *fakeLeaveRepo) HasOverlap(_ context.Context, userID uuid.UUID, start, end time.Time) (bool, error) {
	for _, req := range f.requests {
		if req.UserID != userID {
			continue
		}
		if req.Status != leave.StatusPending && req.Status != leave.StatusApproved {
			continue
		}
		if !req.StartDate.After(end) && !req.EndDate.Before(start) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) ListApprovedInRange(_ context.Context, start, end time.Time) ([]*leave.Request, error) {
	var result []*leave.Request
	for _, req := range f.requests {
		if req.Status == leave.StatusApproved && !req.StartDate.After(end) && !req.EndDate.Before(start) {
			result = append(result, req)
		}
	}
	return result, nil
}

type balanceUserRepo struct {
	balances map[uuid.UUID]float64
}

func (f *balanceUserRepo) Create(_ context.Context, _ *user.User) error { return nil }
func (f *balanceUserRepo) Update(_ context.Context, _ *user.User) error { return nil }
func (f *balanceUserRepo) GetByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, user.ErrUserNotFound
}
func (f *balanceUserRepo) ListActive(_ context.Context) ([]*user.User, error) { return nil, nil }
func (f *balanceUserRepo) ListIDsByRoles(_ context.Context, _ []user.Role) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *balanceUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	balance, ok := f.balances[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return &user.User{ID: id, LeaveBalance: balance, Active: true}, nil
}

func (f *balanceUserRepo) AdjustLeaveBalance(_ context.Context, id uuid.UUID, delta float64) (float64, error) {
	if _, ok := f.balances[id]; !ok {
		return 0, user.ErrUserNotFound
	}
	f.balances[id] += delta
	return f.balances[id], nil
}

type silentNotifier struct {
	userCalls int
	roleCalls int
}

func (f *silentNotifier) Notify(_ []uuid.UUID, _ notification.Type, _, _ string)        { f.userCalls++ }
func (f *silentNotifier) NotifyRoles(_ []user.Role, _ notification.Type, _, _ string)   { f.roleCalls++ }
func (f *silentNotifier) List(_ context.Context, _ uuid.UUID, _ int) ([]*notification.NotificationResponse, error) {
	return nil, nil
}
func (f *silentNotifier) UnreadCount(_ context.Context, _ uuid.UUID) (int, error) { return 0, nil }
func (f *silentNotifier) MarkRead(_ context.Context, _, _ uuid.UUID) error        { return nil }
func (f *silentNotifier) MarkAllRead(_ context.Context, _ uuid.UUID) error        { return nil }
func (f *silentNotifier) Shutdown(_ context.Context) error                        { return nil }

func newLeaveFixture(balance float64) (leave.Service, *fakeLeaveRepo, *balanceUserRepo, *silentNotifier, uuid.UUID) {
	repo := newFakeLeaveRepo()
	userID := uuid.New()
	userRepo := &balanceUserRepo{balances: map[uuid.UUID]float64{userID: balance}}
	notifier := &silentNotifier{}
	svc := NewService(nil, repo, userRepo, notifier, logging.Discard())
	return svc, repo, userRepo, notifier, userID
}

func TestCreate_MultiDayVacation(t *testing.T) {
	svc, _, _, notifier, userID := newLeaveFixture(20)

	resp, err := svc.Create(context.Background(), userID, &leave.CreateRequest{
		Type:      "vacation",
		StartDate: "2024-04-01",
		EndDate:   "2024-04-03",
		Reason:    "family event",
	})
	require.NoError(t, err)

	assert.Equal(t, 3.0, resp.Days)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.Equal(t, 1, notifier.roleCalls)
}

func TestCreate_HalfDayIsAlwaysHalf(t *testing.T) {
	svc, _, _, _, userID := newLeaveFixture(20)

	resp, err := svc.Create(context.Background(), userID, &leave.CreateRequest{
		Type:      "sick",
		StartDate: "2024-04-01",
		EndDate:   "2024-04-01",
		HalfDay:   true,
		Reason:    "doctor visit",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.5, resp.Days)
}

func TestCreate_OverlapRejected(t *testing.T) {
	svc, _, _, _, userID := newLeaveFixture(20)

	_, err := svc.Create(context.Background(), userID, &leave.CreateRequest{
		Type: "vacation", StartDate: "2024-04-01", EndDate: "2024-04-03", Reason: "trip",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), userID, &leave.CreateRequest{
		Type: "unpaid", StartDate: "2024-04-03", EndDate: "2024-04-05", Reason: "extension",
	})
	assert.ErrorIs(t, err, leave.ErrOverlappingRequest)
}

func TestCreate_InsufficientBalance(t *testing.T) {
	svc, _, _, _, userID := newLeaveFixture(1)

	_, err := svc.Create(context.Background(), userID, &leave.CreateRequest{
		Type: "vacation", StartDate: "2024-04-01", EndDate: "2024-04-03", Reason: "trip",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
}

func TestCreate_UnpaidSkipsBalanceCheck(t *testing.T) {
	svc, _, _, _, userID := newLeaveFixture(0)

	resp, err := svc.Create(context.Background(), userID, &leave.CreateRequest{
		Type: "unpaid", StartDate: "2024-04-01", EndDate: "2024-04-05", Reason: "sabbatical",
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, resp.Days)
}

func TestReview_ApproveDeductsBalance(t *testing.T) {
	svc, _, userRepo, notifier, userID := newLeaveFixture(20)
	reviewerID := uuid.New()

	created, err := svc.Create(context.Background(), userID, &leave.CreateRequest{
		Type: "vacation", StartDate: "2024-04-01", EndDate: "2024-04-02", Reason: "trip",
	})
	require.NoError(t, err)

	requestID := uuid.MustParse(created.ID)
	resp, err := svc.Review(context.Background(), reviewerID, requestID, &leave.ReviewRequest{Status: "approved"})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, resp.Status)
	assert.Equal(t, 18.0, userRepo.balances[userID])
	assert.Equal(t, 1, notifier.userCalls)

	_, err = svc.Review(context.Background(), reviewerID, requestID, &leave.ReviewRequest{Status: "rejected"})
	assert.ErrorIs(t, err, leave.ErrAlreadyReviewed)
}

func TestReview_RejectKeepsBalance(t *testing.T) {
	svc, _, userRepo, _, userID := newLeaveFixture(20)

	created, err := svc.Create(context.Background(), userID, &leave.CreateRequest{
		Type: "vacation", StartDate: "2024-04-01", EndDate: "2024-04-02", Reason: "trip",
	})
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), uuid.New(), uuid.MustParse(created.ID), &leave.ReviewRequest{Status: "rejected"})
	require.NoError(t, err)

	assert.Equal(t, 20.0, userRepo.balances[userID])
}

func TestCancel_ApprovedRefundsBalance(t *testing.T) {
	svc, _, userRepo, _, userID := newLeaveFixture(20)

	created, err := svc.Create(context.Background(), userID, &leave.CreateRequest{
		Type: "vacation", StartDate: "2024-04-01", EndDate: "2024-04-02", Reason: "trip",
	})
	require.NoError(t, err)

	requestID := uuid.MustParse(created.ID)
	_, err = svc.Review(context.Background(), uuid.New(), requestID, &leave.ReviewRequest{Status: "approved"})
	require.NoError(t, err)
	require.Equal(t, 18.0, userRepo.balances[userID])

	require.NoError(t, svc.Cancel(context.Background(), userID, requestID))
	assert.Equal(t, 20.0, userRepo.balances[userID])
}

func TestCancel_NotOwner(t *testing.T) {
	svc, _, _, _, userID := newLeaveFixture(20)

	created, err := svc.Create(context.Background(), userID, &leave.CreateRequest{
		Type: "vacation", StartDate: "2024-04-01", EndDate: "2024-04-02", Reason: "trip",
	})
	require.NoError(t, err)

	err = svc.Cancel(context.Background(), uuid.New(), uuid.MustParse(created.ID))
	assert.ErrorIs(t, err, leave.ErrNotRequestOwner)
}

func TestAttachDocument(t *testing.T) {
	svc, _, _, _, userID := newLeaveFixture(20)

	created, err := svc.Create(context.Background(), userID, &leave.CreateRequest{
		Type: "sick", StartDate: "2024-04-01", EndDate: "2024-04-01", Reason: "flu",
	})
	require.NoError(t, err)

	resp, err := svc.AttachDocument(context.Background(), userID, uuid.MustParse(created.ID), "http://localhost:8080/uploads/note.pdf")
	require.NoError(t, err)
	require.NotNil(t, resp.AttachmentURL)
	assert.Equal(t, "http://localhost:8080/uploads/note.pdf", *resp.AttachmentURL)
}
