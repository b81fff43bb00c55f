package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the given .env files, earlier
// files taking precedence over later ones. With no arguments it loads the
// default .env from the current working directory; a missing default file
// is not an error, since configuration may come from the process environment
// alone.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return errors.Join(ErrLoadingEnvFiles, err)
		}
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFiles, err)
	}
	return nil
}

// Load parses environment variables into a fresh instance of T based on its
// `env` field tags.
//
// Example:
//
//	type CacheConfig struct {
//		MaxSize int `env:"CACHE_MAX_SIZE" envDefault:"64"`
//	}
//
//	cfg, err := config.Load[CacheConfig]()
func Load[T any]() (T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if parsing fails. This is useful for
// configurations that are required for the application to start.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}
