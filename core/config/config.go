package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParse is returned when environment variables cannot be parsed into the
// target struct, e.g. a required variable is missing or a value has the
// wrong type.
var ErrParse = errors.New("failed to parse environment configuration")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> struct value
)

// Load populates cfg from environment variables using caarlos0/env struct
// tags. A .env file in the working directory is loaded once per process
// before the first parse; its absence is not an error. Each configuration
// type is parsed once and cached, so repeated loads of the same type return
// identical values.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil target", ErrParse)
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParse, err)
	}

	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on failure. Useful during startup where
// a missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
