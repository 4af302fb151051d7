package databaseerrors

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrEmptyCart     = errors.New("cart is empty")
)
