package notification

import "errors"

var (
	ErrMissingTitle   = errors.New("title is required")
	ErrMissingMessage = errors.New("message is required")
	ErrInvalidTarget  = errors.New("target must be all or specific")
	ErrMissingTargets = errors.New("specific target requires at least one recipient")
)
