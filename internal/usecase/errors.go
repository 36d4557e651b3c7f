package usecase

import "errors"

var (
	// ErrInvalidInput covers bad caller-supplied data; the request had no
	// side effects.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPersistence covers storage rejections and failures. Detail is
	// logged, never returned to the caller.
	ErrPersistence = errors.New("persistence failure")
)
