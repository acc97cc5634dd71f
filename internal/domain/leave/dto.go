package leave

import (
	"time"

	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/validator"
)

type CreateRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	HalfDay   bool   `json:"half_day"`
	Reason    string `json:"reason"`
}

func (r *CreateRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{string(TypeVacation), string(TypeSick), string(TypeCasual), string(TypeUnpaid)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "Type must be vacation, sick, casual or unpaid",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "Start date is required",
		})
	} else if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "Start date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "End date is required",
		})
	} else if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "End date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsValidDate(r.StartDate) && validator.IsValidDate(r.EndDate) {
		start, _ := time.Parse("2006-01-02", r.StartDate)
		end, _ := time.Parse("2006-01-02", r.EndDate)
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "End date must not be before start date",
			})
		}
		if r.HalfDay && !start.Equal(end) {
			errs = append(errs, validator.ValidationError{
				Field:   "half_day",
				Message: "Half-day leave must start and end on the same date",
			})
		}
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "Reason is required",
		})
	}

	return errs
}

type ReviewRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note,omitempty"`
}

func (r *ReviewRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "Status must be approved or rejected",
		})
	}

	return errs
}

type RequestResponse struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	UserName      *string       `json:"user_name,omitempty"`
	Type          Type          `json:"type"`
	StartDate     string        `json:"start_date"`
	EndDate       string        `json:"end_date"`
	HalfDay       bool          `json:"half_day"`
	Days          float64       `json:"days"`
	Reason        string        `json:"reason"`
	Status        RequestStatus `json:"status"`
	AttachmentURL *string       `json:"attachment_url,omitempty"`
	ReviewNote    *string       `json:"review_note,omitempty"`
	ReviewedAt    *time.Time    `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

func ToRequestResponse(req *Request) *RequestResponse {
	return &RequestResponse{
		ID:            req.ID.String(),
		UserID:        req.UserID.String(),
		UserName:      req.UserName,
		Type:          req.Type,
		StartDate:     req.StartDate.Format("2006-01-02"),
		EndDate:       req.EndDate.Format("2006-01-02"),
		HalfDay:       req.HalfDay,
		Days:          req.Days,
		Reason:        req.Reason,
		Status:        req.Status,
		AttachmentURL: req.AttachmentURL,
		ReviewNote:    req.ReviewNote,
		ReviewedAt:    req.ReviewedAt,
		CreatedAt:     req.CreatedAt,
	}
}
