package report

import "errors"

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrNoData           = errors.New("no data for the requested range")
)
