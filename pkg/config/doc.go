// Package config provides a type-safe, generic way to load configuration
// from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads values from one or multiple `.env` files (fallback to the default
//     `.env` in the current working directory, which may be absent).
//   - Parses the environment into any Go struct using field tags.
//   - Exposes a helper that panics on failure (`MustLoad`) for scenarios
//     where configuration is critical.
//
// # Usage
//
// Describe the configuration as a struct with `env` tags:
//
//	type CacheConfig struct {
//	    MaxSize int `env:"CACHE_MAX_SIZE" envDefault:"64"`
//	}
//
// Then load it:
//
//	if err := config.LoadEnv(); err != nil {
//	    // handle malformed .env file
//	}
//	cfg, err := config.Load[CacheConfig]()
//	if err != nil {
//	    // handle parsing error
//	}
//
// Each Load call parses the environment anew; callers that need a single
// shared configuration should load it once at startup and pass it down.
package config
