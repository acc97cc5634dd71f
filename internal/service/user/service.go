package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/master/branch"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
)

type service struct {
	userRepo        user.Repository
	branchRepo      branch.Repository
	annualAllotment float64
	logger          *slog.Logger
}

func NewService(userRepo user.Repository, branchRepo branch.Repository, annualAllotment float64, logger *slog.Logger) user.Service {
	return &service{
		userRepo:        userRepo,
		branchRepo:      branchRepo,
		annualAllotment: annualAllotment,
		logger:          logger,
	}
}

func (s *service) Create(ctx context.Context, req *user.CreateUserRequest) (*user.UserResponse, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}

	if existing, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, user.ErrEmailAlreadyExists
	}

	var branchID *uuid.UUID
	if req.BranchID != nil {
		id, err := uuid.Parse(*req.BranchID)
		if err != nil {
			return nil, branch.ErrBranchNotFound
		}
		if _, err := s.branchRepo.GetByID(ctx, id); err != nil {
			return nil, err
		}
		branchID = &id
	}

	salary, err := decimal.NewFromString(req.Salary)
	if err != nil {
		return nil, user.ErrValidationFailed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		ID:           uuid.New(),
		BranchID:     branchID,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         user.Role(req.Role),
		Salary:       salary,
		LeaveBalance: s.annualAllotment,
		Active:       true,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		slog.String("user_id", u.ID.String()),
		slog.String("role", string(u.Role)))

	return user.ToUserResponse(u), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.ToUserResponse(u), nil
}

func (s *service) ListActive(ctx context.Context) ([]*user.UserResponse, error) {
	users, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*user.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, user.ToUserResponse(u))
	}
	return out, nil
}

func (s *service) Deactivate(ctx context.Context, id uuid.UUID) error {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	u.Active = false
	if err := s.userRepo.Update(ctx, u); err != nil {
		return err
	}

	s.logger.Info("user deactivated", slog.String("user_id", id.String()))
	return nil
}
