package domain

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrNotTaskOwner      = errors.New("caller does not own task")
	ErrAccountNotFound   = errors.New("account not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid credential")
)
