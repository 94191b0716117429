package credentials_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenakit/arena/core/credentials"
)

func newRedisStore(t *testing.T, opts ...credentials.RedisOption) (*credentials.Redis, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return credentials.NewRedis(client, opts...), srv
}

func TestRedis_TokenLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newRedisStore(t)

	_, ok := store.Token(ctx)
	assert.False(t, ok)

	store.SetToken(ctx, "abc123")
	tok, ok := store.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "abc123", tok)

	store.ClearToken(ctx)
	_, ok = store.Token(ctx)
	assert.False(t, ok)
}

func TestRedis_ProfileRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newRedisStore(t)

	store.SetProfile(ctx, []byte(`{"username":"alice"}`))
	raw, ok := store.Profile(ctx)
	require.True(t, ok)
	assert.JSONEq(t, `{"username":"alice"}`, string(raw))
}

func TestRedis_KeyPrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, srv := newRedisStore(t, credentials.WithKeyPrefix("custom"))

	store.SetToken(ctx, "abc123")
	got, err := srv.Get("custom:token")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestRedis_UnavailableDegradesToAbsent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, srv := newRedisStore(t)
	store.SetToken(ctx, "abc123")

	srv.Close()

	_, ok := store.Token(ctx)
	assert.False(t, ok)
	_, ok = store.Profile(ctx)
	assert.False(t, ok)

	// Writes and clears must not panic or error either.
	store.SetToken(ctx, "other")
	store.ClearToken(ctx)
}
