package master

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/master/branch"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/master/holiday"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/timeutil"
)

// Service manages the master data: branches and the holiday calendar.
type Service struct {
	branchRepo  branch.Repository
	holidayRepo holiday.Repository
	logger      *slog.Logger
}

func NewService(branchRepo branch.Repository, holidayRepo holiday.Repository, logger *slog.Logger) *Service {
	return &Service{
		branchRepo:  branchRepo,
		holidayRepo: holidayRepo,
		logger:      logger,
	}
}

func (s *Service) CreateBranch(ctx context.Context, req *branch.CreateBranchRequest) (*branch.BranchResponse, error) {
	weekendDays := req.WeekendDays
	if weekendDays == nil {
		weekendDays = []int{int(time.Sunday)}
	}

	b := &branch.Branch{
		ID:          uuid.New(),
		Name:        req.Name,
		Country:     req.Country,
		Code:        req.Code,
		Address:     req.Address,
		Timezone:    req.Timezone,
		WeekendDays: weekendDays,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}

	if err := s.branchRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("branch created",
		slog.String("branch_id", b.ID.String()),
		slog.String("code", b.Code),
		slog.String("timezone", b.Timezone))

	return branch.ToBranchResponse(b), nil
}

func (s *Service) GetBranch(ctx context.Context, id uuid.UUID) (*branch.BranchResponse, error) {
	b, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return branch.ToBranchResponse(b), nil
}

func (s *Service) ListBranches(ctx context.Context) ([]*branch.BranchResponse, error) {
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*branch.BranchResponse, 0, len(branches))
	for _, b := range branches {
		responses = append(responses, branch.ToBranchResponse(b))
	}

	return responses, nil
}

func (s *Service) UpdateBranch(ctx context.Context, req *branch.UpdateBranchRequest) (*branch.BranchResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, branch.ErrBranchNotFound
	}

	b, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Country != nil {
		b.Country = *req.Country
	}
	if req.Address != nil {
		b.Address = req.Address
	}
	if req.Timezone != nil {
		b.Timezone = *req.Timezone
	}
	if req.WeekendDays != nil {
		b.WeekendDays = req.WeekendDays
	}
	if req.Latitude != nil {
		b.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		b.Longitude = req.Longitude
	}

	if err := s.branchRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	return branch.ToBranchResponse(b), nil
}

func (s *Service) DeleteBranch(ctx context.Context, id uuid.UUID) error {
	return s.branchRepo.Delete(ctx, id)
}

func (s *Service) CreateHoliday(ctx context.Context, req *holiday.CreateHolidayRequest) (*holiday.HolidayResponse, error) {
	date, err := time.ParseInLocation(timeutil.DateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, holiday.ErrValidationFailed
	}
	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, holiday.ErrValidationFailed
	}
	if _, err := s.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, err
	}

	h := &holiday.Holiday{
		ID:       uuid.New(),
		BranchID: branchID,
		Name:     req.Name,
		Date:     date,
		Optional: req.Optional,
		Custom:   req.Custom,
	}

	if err := s.holidayRepo.Create(ctx, h); err != nil {
		return nil, err
	}

	return toHolidayResponse(h), nil
}

func (s *Service) ListHolidays(ctx context.Context) ([]*holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toHolidayResponse(h))
	}

	return responses, nil
}

func (s *Service) DeleteHoliday(ctx context.Context, id uuid.UUID) error {
	return s.holidayRepo.Delete(ctx, id)
}

func toHolidayResponse(h *holiday.Holiday) *holiday.HolidayResponse {
	return &holiday.HolidayResponse{
		ID:       h.ID.String(),
		BranchID: h.BranchID.String(),
		Name:     h.Name,
		Date:     h.Date.Format(timeutil.DateLayout),
		Optional: h.Optional,
		Custom:   h.Custom,
	}
}
