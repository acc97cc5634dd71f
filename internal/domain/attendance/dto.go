package attendance

import (
	"time"

	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/validator"
)

type PunchRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *PunchRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if r.Latitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "Latitude is required",
		})
	}
	if r.Longitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "Longitude is required",
		})
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "Latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "Longitude must be between -180 and 180",
		})
	}

	return errs
}

type ListQuery struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (q *ListQuery) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(q.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "Start date is required",
		})
	} else if !validator.IsValidDate(q.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "Start date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(q.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "End date is required",
		})
	} else if !validator.IsValidDate(q.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "End date must be in YYYY-MM-DD format",
		})
	}

	return errs
}

type AttendanceResponse struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	Date             string            `json:"date"`
	PunchIn          *time.Time        `json:"punch_in"`
	PunchOut         *time.Time        `json:"punch_out"`
	Status           Status            `json:"status"`
	Origin           Origin            `json:"origin,omitempty"`
	Duration         string            `json:"duration"`
	PunchInLocation  *LocationSnapshot `json:"punch_in_location,omitempty"`
	PunchOutLocation *LocationSnapshot `json:"punch_out_location,omitempty"`
}
