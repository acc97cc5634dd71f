package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyPunchedIn   = errors.New("already punched in today")
	ErrAlreadyPunchedOut  = errors.New("already punched out today")
	ErrNotPunchedIn       = errors.New("no punch in recorded today")
	ErrUserNotFound       = errors.New("user not found")
	ErrValidationFailed   = errors.New("validation failed")
)
