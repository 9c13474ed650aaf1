package promotion

import "errors"

var (
	ErrNotFound      = errors.New("promotion not found")
	ErrMissingTitle  = errors.New("title is required")
	ErrInvalidWindow = errors.New("end date must be after start date")
	ErrLimitReached  = errors.New("promotion usage limit reached")
)
