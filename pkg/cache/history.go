package cache

import "container/list"

// evictionHistory is a capped queue of recently evicted keys, newest at the
// front. When full, pushing a new key drops the oldest one from the back.
// The bound is the cache's max size reused as an item count.
type evictionHistory struct {
	keys  *list.List
	bound int
}

func newEvictionHistory(bound int) *evictionHistory {
	return &evictionHistory{
		keys:  list.New(),
		bound: bound,
	}
}

func (h *evictionHistory) pushFront(key string) {
	if h.keys.Len() >= h.bound {
		if back := h.keys.Back(); back != nil {
			h.keys.Remove(back)
		}
	}
	h.keys.PushFront(key)
}

func (h *evictionHistory) contains(key string) bool {
	for e := h.keys.Front(); e != nil; e = e.Next() {
		if e.Value.(string) == key {
			return true
		}
	}
	return false
}

// snapshot copies the history into a slice, newest eviction first.
func (h *evictionHistory) snapshot() []string {
	keys := make([]string, 0, h.keys.Len())
	for e := h.keys.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(string))
	}
	return keys
}
