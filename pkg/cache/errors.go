package cache

import "errors"

// Package-specific errors
var (
	// ErrValueTooLarge is returned by Put when a single value's length exceeds
	// the cache's capacity bound. Such a value can never fit, so it is rejected
	// instead of draining every existing entry.
	ErrValueTooLarge = errors.New("cache: value larger than max size")
)
