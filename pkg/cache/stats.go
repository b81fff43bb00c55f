package cache

// Stats is a snapshot of the cache's lookup and eviction counters.
// Counters grow monotonically for the life of the cache and are never reset.
type Stats struct {
	// Accesses is the total number of Get calls, hit or miss.
	Accesses uint64

	// Hits is the number of Get calls that found a present key.
	// Hits never exceeds Accesses.
	Hits uint64

	// Evictions is the number of entries removed for capacity.
	Evictions uint64
}

// HitRatio returns Hits/Accesses, or 0 when nothing has been looked up yet.
func (s Stats) HitRatio() float64 {
	if s.Accesses == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Accesses)
}
