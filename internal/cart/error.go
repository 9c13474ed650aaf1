package cart

import "errors"

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrLimitExceeded    = errors.New("cart cannot hold more than 50 units")
	ErrLineNotFound     = errors.New("cart line not found")
	ErrMissingOwner     = errors.New("cart owner is required")
	ErrMissingProductID = errors.New("product id is required")
)
