package branch

import (
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/timeutil"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/validator"
)

type BranchResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Code        string   `json:"code"`
	Address     *string  `json:"address,omitempty"`
	Timezone    string   `json:"timezone"`
	WeekendDays []int    `json:"weekend_days"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

func ToBranchResponse(b *Branch) *BranchResponse {
	return &BranchResponse{
		ID:          b.ID.String(),
		Name:        b.Name,
		Country:     b.Country,
		Code:        b.Code,
		Address:     b.Address,
		Timezone:    b.Timezone,
		WeekendDays: b.WeekendDays,
		Latitude:    b.Latitude,
		Longitude:   b.Longitude,
	}
}

type CreateBranchRequest struct {
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Code        string   `json:"code"`
	Address     *string  `json:"address,omitempty"`
	Timezone    string   `json:"timezone"`
	WeekendDays []int    `json:"weekend_days"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

func (r *CreateBranchRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Country) {
		errs = append(errs, validator.ValidationError{
			Field:   "country",
			Message: "Country is required",
		})
	}

	if !validator.IsValidBranchCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "Code must be 2-10 uppercase letters or digits",
		})
	}

	if validator.IsEmpty(r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "Timezone is required",
		})
	} else if _, err := timeutil.ResolveLocation(r.Timezone); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "Timezone must be a valid IANA name",
		})
	}

	for _, d := range r.WeekendDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "weekend_days",
				Message: "Weekend days must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	return errs
}

type UpdateBranchRequest struct {
	ID          string   `json:"-"` // From URL
	Name        *string  `json:"name,omitempty"`
	Country     *string  `json:"country,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Timezone    *string  `json:"timezone,omitempty"`
	WeekendDays []int    `json:"weekend_days,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

func (r *UpdateBranchRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Name must not be empty",
		})
	}

	if r.Timezone != nil {
		if _, err := timeutil.ResolveLocation(*r.Timezone); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "timezone",
				Message: "Timezone must be a valid IANA name",
			})
		}
	}

	for _, d := range r.WeekendDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "weekend_days",
				Message: "Weekend days must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	return errs
}
