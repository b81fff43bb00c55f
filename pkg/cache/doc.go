// Package cache provides a size-bounded key-value cache with insertion-order
// eviction and a bounded history of recently evicted keys.
//
// Unlike an item-count LRU, capacity is measured in bytes: the sum of all
// stored value lengths never exceeds the configured bound. When an insertion
// would overflow the bound, the oldest-inserted entries are evicted first
// until the new value fits. Reads deliberately do not promote entries, so
// eviction order depends only on when entries were inserted, never on how
// often they are read.
//
// # Key Features
//
//   - Byte-size capacity accounting instead of item counts
//   - Strict insertion-order eviction, oldest entry first
//   - Bounded eviction history for "was this key evicted recently?" queries
//   - Access and hit counters for lookup telemetry
//   - Optional eviction callbacks for cleanup of derived resources
//   - O(1) Get, Put, and Remove
//
// # Usage
//
// Create a cache with a capacity bound:
//
//	c := cache.New(cache.WithMaxSize(1024))
//
// Basic operations:
//
//	// Store values; older entries are evicted when space runs out
//	prev, existed, err := c.Put("user:123", payload)
//	if errors.Is(err, cache.ErrValueTooLarge) {
//		// value can never fit in this cache
//	}
//
//	// Retrieve values (does not affect eviction order)
//	data, found := c.Get("user:123")
//
//	// Ask whether a missing key was evicted rather than never stored
//	if c.HasEvictedRecently("user:123") {
//		// key was pushed out for capacity
//	}
//
// # Configuration
//
// The capacity bound can be sourced from the environment using the Config
// struct together with a config loader:
//
//	cfg := config.MustLoad[cache.Config]()
//	c := cache.NewFromConfig(cfg)
//
// # Eviction History
//
// Every capacity eviction records the evicted key in a bounded queue, newest
// first. The queue holds at most MaxSize keys; the oldest record is dropped
// when the bound is reached. Explicit Remove calls are not evictions and are
// not recorded.
//
// # Ownership
//
// The cache owns value slices once stored: callers must not modify a slice
// after Put, and must not modify slices returned by Get or Remove.
//
// # Concurrency
//
// The cache performs no internal locking and is not safe for concurrent use.
// It is designed for a single owner; wrap it behind a mutex or confine it to
// one goroutine when sharing is required.
package cache
