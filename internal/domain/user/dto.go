package user

import (
	"github.com/shopspring/decimal"

	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      string  `json:"role"`
	BranchID  *string `json:"branch_id"`
	Salary    string  `json:"salary"`
}

func (r *CreateUserRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Invalid email format",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "First name is required",
		})
	}

	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleHR), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "Role must be admin, hr or employee",
		})
	}

	if !validator.IsEmpty(r.Salary) {
		if _, err := decimal.NewFromString(r.Salary); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "salary",
				Message: "Salary must be a valid decimal number",
			})
		}
	}

	return errs
}

type UserResponse struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Role         Role    `json:"role"`
	BranchID     *string `json:"branch_id"`
	BranchName   *string `json:"branch_name,omitempty"`
	Salary       string  `json:"salary"`
	LeaveBalance float64 `json:"leave_balance"`
	Active       bool    `json:"active"`
}

func ToUserResponse(u *User) *UserResponse {
	resp := &UserResponse{
		ID:           u.ID.String(),
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		BranchName:   u.BranchName,
		Salary:       u.Salary.StringFixed(2),
		LeaveBalance: u.LeaveBalance,
		Active:       u.Active,
	}
	if u.BranchID != nil {
		id := u.BranchID.String()
		resp.BranchID = &id
	}
	return resp
}
