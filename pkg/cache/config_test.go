package cache_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bytecache/pkg/cache"
	"github.com/dmitrymomot/bytecache/pkg/config"
)

func TestNewFromConfig(t *testing.T) {
	t.Run("max size from environment", func(t *testing.T) {
		t.Setenv("BYTECACHE_MAX_SIZE", "5")

		cfg, err := config.Load[cache.Config]()
		require.NoError(t, err)

		c := cache.NewFromConfig(cfg)
		assert.Equal(t, 5, c.MaxSize())

		// The configured bound governs eviction like any other.
		c.Put("a", []byte("abc"))
		c.Put("b", []byte("dfg"))
		assert.False(t, c.Contains("a"))
		assert.True(t, c.HasEvictedRecently("a"))
	})

	t.Run("default max size", func(t *testing.T) {
		os.Unsetenv("BYTECACHE_MAX_SIZE")

		cfg, err := config.Load[cache.Config]()
		require.NoError(t, err)

		c := cache.NewFromConfig(cfg)
		assert.Equal(t, cache.DefaultMaxSize, c.MaxSize())
	})

	t.Run("options override config", func(t *testing.T) {
		c := cache.NewFromConfig(cache.Config{MaxSize: 10}, cache.WithMaxSize(20))
		assert.Equal(t, 20, c.MaxSize())
	})
}
