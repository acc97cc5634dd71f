package leave

import "errors"

var (
	ErrRequestNotFound     = errors.New("leave request not found")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrOverlappingRequest  = errors.New("overlapping leave request exists")
	ErrAlreadyReviewed     = errors.New("leave request already reviewed")
	ErrNotRequestOwner     = errors.New("not the owner of this leave request")
	ErrValidationFailed    = errors.New("validation failed")
)
