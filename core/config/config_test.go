package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenakit/arena/core/config"
)

type apiConfig struct {
	BaseURL string        `env:"CONFIG_TEST_BASE_URL" envDefault:"http://localhost:8000/api"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"15s"`
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_REQUIRED_SECRET,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg apiConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "http://localhost:8000/api", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestLoad_Cached(t *testing.T) {
	var first apiConfig
	require.NoError(t, config.Load(&first))

	// Changing the environment after the first load must not change the
	// cached value for the same type.
	t.Setenv("CONFIG_TEST_BASE_URL", "http://other:9000/api")

	var second apiConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoad_RequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParse)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
