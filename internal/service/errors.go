package serviceerrors

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrContextCanceled  = errors.New("context canceled")
	ErrDeadlineExceeded = errors.New("deadline exceeded")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCheckoutClosed   = errors.New("checkout is not open")
	ErrBadTransition    = errors.New("invalid status transition")
	ErrInvalidInput     = errors.New("invalid input")
)
