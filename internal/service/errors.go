package serviceerrors

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrContextCanceled  = errors.New("context canceled")
	ErrDeadlineExceeded = errors.New("deadline exceeded")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")

	ErrInvalidItem = errors.New("invalid menu item")
	ErrEmptyCart   = errors.New("cart is empty")
	ErrEmptyName   = errors.New("customer name is required")
)
