package holiday

import "errors"

var (
	ErrHolidayNotFound  = errors.New("holiday not found")
	ErrHolidayExists    = errors.New("holiday already exists on that date")
	ErrValidationFailed = errors.New("validation failed")
)
