// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads a .env file on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/arenakit/arena/core/config"
//
//	type APIConfig struct {
//		BaseURL string        `env:"ARENA_BASE_URL" envDefault:"http://localhost:8000/api"`
//		Timeout time.Duration `env:"ARENA_TIMEOUT" envDefault:"15s"`
//	}
//
//	func main() {
//		var cfg APIConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime;
// subsequent loads of the same type return the cached value. Different
// types are cached independently.
package config
