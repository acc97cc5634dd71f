package holiday

import (
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/validator"
)

type HolidayResponse struct {
	ID       string `json:"id"`
	BranchID string `json:"branch_id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Optional bool   `json:"optional"`
	Custom   bool   `json:"custom"`
}

type CreateHolidayRequest struct {
	BranchID string `json:"branch_id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Optional bool   `json:"optional"`
	Custom   bool   `json:"custom"`
}

func (r *CreateHolidayRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "Branch is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Name is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date is required",
		})
	} else if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date must be in YYYY-MM-DD format",
		})
	}

	return errs
}
