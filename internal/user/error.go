package user

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrMissingFields      = errors.New("name, email and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)
