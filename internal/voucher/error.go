package voucher

import "errors"

var (
	ErrNotFound       = errors.New("voucher not found")
	ErrInvalidCode    = errors.New("voucher code is required")
	ErrInvalidKind    = errors.New("voucher type must be percent or fixed")
	ErrAlreadyApplied = errors.New("another voucher is already applied")
	ErrNotApplied     = errors.New("no voucher is applied")
)
