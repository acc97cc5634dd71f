package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/notification"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/database"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/timeutil"
	"github.com/staffhub-dev/hrms-backend-go/internal/repository/postgresql"
)

type service struct {
	db       *database.DB
	repo     leave.Repository
	userRepo user.Repository
	notifier notification.Service
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(
	db *database.DB,
	repo leave.Repository,
	userRepo user.Repository,
	notifier notification.Service,
	logger *slog.Logger,
) leave.Service {
	return &service{
		db:       db,
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *service) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, req *leave.CreateRequest) (*leave.RequestResponse, error) {
	start, err := time.ParseInLocation(timeutil.DateLayout, req.StartDate, time.UTC)
	if err != nil {
		return nil, leave.ErrValidationFailed
	}
	end, err := time.ParseInLocation(timeutil.DateLayout, req.EndDate, time.UTC)
	if err != nil {
		return nil, leave.ErrValidationFailed
	}

	days := leave.SpanDays(start, end, req.HalfDay)

	overlap, err := s.repo.HasOverlap(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, leave.ErrOverlappingRequest
	}

	request := &leave.Request{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      leave.Type(req.Type),
		StartDate: start,
		EndDate:   end,
		HalfDay:   req.HalfDay,
		Days:      days,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	}

	// The allotment is only reserved on approval, but an obviously
	// unfundable request is rejected up front.
	if request.DeductsBalance() {
		u, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if u.LeaveBalance < days {
			return nil, leave.ErrInsufficientBalance
		}
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.notifier.NotifyRoles(
		[]user.Role{user.RoleAdmin, user.RoleHR},
		notification.TypeLeaveSubmitted,
		"Leave request submitted",
		"A new leave request is waiting for review.",
	)

	s.logger.Info("leave request created",
		slog.String("request_id", request.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Float64("days", days))

	return leave.ToRequestResponse(request), nil
}

func (s *service) Review(ctx context.Context, reviewerID, requestID uuid.UUID, req *leave.ReviewRequest) (*leave.RequestResponse, error) {
	request, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != leave.StatusPending {
		return nil, leave.ErrAlreadyReviewed
	}

	now := s.now()
	request.Status = leave.RequestStatus(req.Status)
	request.ReviewerID = &reviewerID
	request.ReviewNote = req.Note
	request.ReviewedAt = &now

	err = s.withTx(ctx, func(ctx context.Context) error {
		if request.Status == leave.StatusApproved && request.DeductsBalance() {
			balance, err := s.userRepo.AdjustLeaveBalance(ctx, request.UserID, -request.Days)
			if err != nil {
				return err
			}
			if balance < 0 {
				return leave.ErrInsufficientBalance
			}
		}
		return s.repo.Update(ctx, request)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify([]uuid.UUID{request.UserID},
		notification.TypeLeaveReviewed,
		"Leave request "+req.Status,
		"Your leave request has been "+req.Status+".")

	s.logger.Info("leave request reviewed",
		slog.String("request_id", requestID.String()),
		slog.String("reviewer_id", reviewerID.String()),
		slog.String("status", req.Status))

	return leave.ToRequestResponse(request), nil
}

func (s *service) Cancel(ctx context.Context, userID, requestID uuid.UUID) error {
	request, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if request.UserID != userID {
		return leave.ErrNotRequestOwner
	}
	if request.Status != leave.StatusPending && request.Status != leave.StatusApproved {
		return leave.ErrAlreadyReviewed
	}

	refund := request.Status == leave.StatusApproved && request.DeductsBalance()
	request.Status = leave.StatusCanceled

	return s.withTx(ctx, func(ctx context.Context) error {
		if refund {
			if _, err := s.userRepo.AdjustLeaveBalance(ctx, userID, request.Days); err != nil {
				return err
			}
		}
		return s.repo.Update(ctx, request)
	})
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]*leave.RequestResponse, error) {
	requests, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

func (s *service) ListPending(ctx context.Context) ([]*leave.RequestResponse, error) {
	requests, err := s.repo.ListByStatus(ctx, leave.StatusPending)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

func (s *service) AttachDocument(ctx context.Context, userID, requestID uuid.UUID, url string) (*leave.RequestResponse, error) {
	request, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.UserID != userID {
		return nil, leave.ErrNotRequestOwner
	}

	request.AttachmentURL = &url
	if err := s.repo.Update(ctx, request); err != nil {
		return nil, err
	}

	return leave.ToRequestResponse(request), nil
}

func toResponses(requests []*leave.Request) []*leave.RequestResponse {
	responses := make([]*leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToRequestResponse(req))
	}
	return responses
}
