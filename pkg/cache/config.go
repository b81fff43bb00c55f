package cache

// Config holds the cache settings that can be sourced from the environment.
// The capacity bound is the only externally configurable value.
type Config struct {
	// MaxSize is the capacity bound in bytes of stored values.
	MaxSize int `env:"BYTECACHE_MAX_SIZE" envDefault:"64"`
}

// NewFromConfig creates a cache from a parsed Config. Options are applied
// after the config, so they take precedence.
func NewFromConfig(cfg Config, opts ...Option) *Cache {
	all := append([]Option{WithMaxSize(cfg.MaxSize)}, opts...)
	return New(all...)
}
