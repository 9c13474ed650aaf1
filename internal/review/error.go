package review

import "errors"

var (
	ErrNotFound         = errors.New("review not found")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrMissingProductID = errors.New("product id is required")
)
