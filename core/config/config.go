package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// loadEnvOnce makes the .env file load exactly once per process.
	loadEnvOnce sync.Once

	// cache stores loaded configurations keyed by their concrete type.
	cache sync.Map
)

// Load populates cfg from environment variables, loading a .env file on
// first use. Each configuration type is parsed once per process; subsequent
// calls for the same type return the cached value.
func Load[T any](cfg *T) error {
	loadEnvOnce.Do(func() {
		// A missing .env file is not an error; the environment may be set
		// by the process manager.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", key, err)
	}

	cached, _ := cache.LoadOrStore(key, *cfg)
	*cfg = cached.(T)
	return nil
}

// MustLoad is like Load but panics on failure. Useful during application
// startup where a missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
