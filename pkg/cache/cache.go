package cache

import (
	"container/list"
	"log/slog"
)

type entry struct {
	key   string
	value []byte
}

// Cache is a size-bounded key-value cache with insertion-order eviction.
// Capacity is measured in bytes of stored values, not item count. When an
// insertion would push the total over the bound, the oldest-inserted entries
// are evicted first until the new value fits. Lookups do not promote entries:
// recency is insertion recency, not access recency.
//
// Cache is not safe for concurrent use. It assumes a single owner; callers
// sharing it across goroutines must synchronize externally.
type Cache struct {
	maxSize     int
	currentSize int
	items       map[string]*list.Element
	order       *list.List // front = newest insertion, back = oldest
	history     *evictionHistory
	accesses    uint64
	hits        uint64
	evictions   uint64
	onEvict     func(key string, value []byte)
	logger      *slog.Logger
}

// DefaultMaxSize is the capacity bound used when WithMaxSize is not given.
const DefaultMaxSize = 64

// New creates a cache with DefaultMaxSize capacity unless overridden via options.
func New(opts ...Option) *Cache {
	c := &Cache{
		maxSize: DefaultMaxSize,
		items:   make(map[string]*list.Element),
		order:   list.New(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.history = newEvictionHistory(c.maxSize)
	return c
}

// Put adds or updates a value in the cache, evicting the oldest-inserted
// entries until the value fits. The cache takes ownership of the value slice;
// callers must not modify it afterwards.
//
// Returns the previous value if the key existed. Values longer than the
// capacity bound are rejected with ErrValueTooLarge rather than draining
// the cache for an entry that can never fit.
func (c *Cache) Put(key string, value []byte) ([]byte, bool, error) {
	if len(value) > c.maxSize {
		c.logger.Debug("rejected oversized value", "key", key, "size", len(value), "max_size", c.maxSize)
		return nil, false, ErrValueTooLarge
	}

	var prev []byte
	existed := false
	if elem, ok := c.items[key]; ok {
		old := elem.Value.(*entry)
		prev = old.value
		existed = true
		c.currentSize -= len(old.value)
		c.order.Remove(elem)
		delete(c.items, key)
	}

	for c.currentSize+len(value) > c.maxSize {
		c.evictOldest()
	}

	c.items[key] = c.order.PushFront(&entry{key: key, value: value})
	c.currentSize += len(value)
	return prev, existed, nil
}

// Get retrieves a value without changing its eviction position.
// Every call counts as an access; found keys also count as hits.
// The returned slice is the cache's storage; callers must not mutate it.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.accesses++
	if elem, ok := c.items[key]; ok {
		c.hits++
		return elem.Value.(*entry).value, true
	}
	return nil, false
}

// Contains reports whether the key is present. Unlike Get it does not
// touch the access counters.
func (c *Cache) Contains(key string) bool {
	_, ok := c.items[key]
	return ok
}

// HasEvictedRecently reports whether the key appears in the bounded
// eviction history.
func (c *Cache) HasEvictedRecently(key string) bool {
	return c.history.contains(key)
}

// RecentEvictions returns the eviction history as a slice, most recently
// evicted key first. The slice is a copy; it never exceeds MaxSize entries.
func (c *Cache) RecentEvictions() []string {
	return c.history.snapshot()
}

// Remove deletes a key from the cache. Explicit removal is not an eviction
// and is not recorded in the eviction history.
// Returns the removed value and true if it existed.
func (c *Cache) Remove(key string) ([]byte, bool) {
	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	ent := elem.Value.(*entry)
	c.order.Remove(elem)
	delete(c.items, key)
	c.currentSize -= len(ent.value)
	return ent.value, true
}

// Clear removes all items from the cache. If an evict callback is set, it's
// called for each item. Counters and eviction history are preserved.
func (c *Cache) Clear() {
	if c.onEvict != nil {
		for _, elem := range c.items {
			ent := elem.Value.(*entry)
			c.onEvict(ent.key, ent.value)
		}
	}
	c.items = make(map[string]*list.Element)
	c.order.Init()
	c.currentSize = 0
}

// SetEvictCallback sets a callback function that is called when items are
// evicted for capacity. This is useful for cleanup of derived resources.
func (c *Cache) SetEvictCallback(fn func(key string, value []byte)) {
	c.onEvict = fn
}

// Size returns the total byte length of all stored values.
func (c *Cache) Size() int {
	return c.currentSize
}

// MaxSize returns the capacity bound in bytes.
func (c *Cache) MaxSize() int {
	return c.maxSize
}

// Len returns the number of entries currently stored.
func (c *Cache) Len() int {
	return c.order.Len()
}

// Stats returns a snapshot of the lookup and eviction counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Accesses:  c.accesses,
		Hits:      c.hits,
		Evictions: c.evictions,
	}
}

func (c *Cache) evictOldest() {
	elem := c.order.Back()
	if elem == nil {
		return
	}
	ent := elem.Value.(*entry)
	c.order.Remove(elem)
	delete(c.items, ent.key)
	c.currentSize -= len(ent.value)
	c.history.pushFront(ent.key)
	c.evictions++

	if c.onEvict != nil {
		c.onEvict(ent.key, ent.value)
	}
	c.logger.Debug("evicted entry for capacity", "key", ent.key, "size", len(ent.value))
}
