package storage

import "errors"

var (
	// ErrUnavailable signals the backing store cannot be reached.
	ErrUnavailable = errors.New("storage unavailable")
)
