package inventory

import "errors"

var (
	ErrNotFound        = errors.New("inventory record not found")
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
	ErrInvalidRestock  = errors.New("restock amount must be positive")
)
