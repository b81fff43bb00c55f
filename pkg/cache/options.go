package cache

import "log/slog"

// Option configures a cache during construction.
type Option func(*Cache)

// WithMaxSize sets the capacity bound in bytes of stored values.
// The bound must be positive, otherwise it panics.
func WithMaxSize(n int) Option {
	return func(c *Cache) {
		if n <= 0 {
			panic("cache max size must be positive")
		}
		c.maxSize = n
	}
}

// WithLogger sets the logger used for eviction debug output.
// By default log output is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithEvictCallback sets a callback invoked for each entry evicted for
// capacity, and for each entry dropped by Clear.
func WithEvictCallback(fn func(key string, value []byte)) Option {
	return func(c *Cache) {
		c.onEvict = fn
	}
}
