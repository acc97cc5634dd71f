package response

import (
	"errors"
	"net/http"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/attendance"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/auth"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/leave"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/master/branch"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/master/holiday"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/notification"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/payroll"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/report"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Service-level validation sentinels (malformed dates, params)
	case errors.Is(err, attendance.ErrValidationFailed),
		errors.Is(err, leave.ErrValidationFailed),
		errors.Is(err, report.ErrValidationFailed),
		errors.Is(err, holiday.ErrValidationFailed),
		errors.Is(err, branch.ErrValidationFailed),
		errors.Is(err, user.ErrValidationFailed),
		errors.Is(err, auth.ErrValidationFailed),
		errors.Is(err, payroll.ErrValidationFailed):
		BadRequest(w, "Validation failed", nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrEmailAlreadyExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		BadRequest(w, "Already punched in today", nil)
	case errors.Is(err, attendance.ErrAlreadyPunchedOut):
		BadRequest(w, "Already punched out today", nil)
	case errors.Is(err, attendance.ErrNotPunchedIn):
		BadRequest(w, "No punch in recorded today", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUserNotFound):
		NotFound(w, "User not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "Overlapping leave request exists")
	case errors.Is(err, leave.ErrAlreadyReviewed):
		Conflict(w, "Leave request already reviewed")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Not the owner of this leave request")

	// Master data errors
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, branch.ErrBranchCodeExists):
		Conflict(w, "Branch code already exists")
	case errors.Is(err, branch.ErrBranchHasUsers):
		Conflict(w, "Branch still has assigned users")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists on that date")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNotOwner):
		Forbidden(w, "Notification belongs to another user")

	// Payroll and report errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrInvalidStatus):
		Conflict(w, "Payslip cannot move to that status")
	case errors.Is(err, report.ErrNoData):
		NotFound(w, "No data for the requested range")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
