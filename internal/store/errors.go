package store

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrBadTransition = errors.New("invalid status transition")
)
