package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrMissingResource = errors.New("missing resource")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrInvalidInput    = errors.New("invalid input")
)
