package order

import "errors"

var (
	// -- Checkout validation --
	ErrMissingOwner   = errors.New("order owner is required")
	ErrMissingName    = errors.New("customer name is required")
	ErrMissingPhone   = errors.New("phone number is required")
	ErrMissingAddress = errors.New("delivery address is required")
	ErrInvalidPhone   = errors.New("phone number must be exactly 10 digits")
	ErrInvalidMethod  = errors.New("payment method must be COD or BANK")
	ErrEmptyCart      = errors.New("cart is empty")

	// -- Lifecycle --
	ErrNotFound          = errors.New("order not found")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("illegal order status transition")
	ErrNotPending        = errors.New("order is not pending")
)
