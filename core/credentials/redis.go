package credentials

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/arenakit/arena/pkg/logger"
)

const defaultKeyPrefix = "arena:credentials"

// Redis mirrors credentials into a redis instance so multiple processes on
// the same host share one authenticated session. Connectivity problems
// degrade to absent, never to an error.
type Redis struct {
	client redis.UniversalClient
	prefix string
	log    *slog.Logger
}

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithKeyPrefix overrides the default "arena:credentials" key prefix.
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// WithRedisLogger sets the logger used for degraded storage operations.
func WithRedisLogger(log *slog.Logger) RedisOption {
	return func(r *Redis) {
		if log != nil {
			r.log = log
		}
	}
}

// NewRedis creates a redis-backed store on an existing client.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		prefix: defaultKeyPrefix,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Redis) tokenKey() string   { return r.prefix + ":token" }
func (r *Redis) profileKey() string { return r.prefix + ":profile" }

// Token returns the stored token, absent on miss or backend trouble.
func (r *Redis) Token(ctx context.Context) (string, bool) {
	val, err := r.client.Get(ctx, r.tokenKey()).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Debug("redis token read failed", logger.Component("credentials"), logger.Error(err))
		}
		return "", false
	}
	return val, val != ""
}

// SetToken stores the token without expiry; the server decides validity.
func (r *Redis) SetToken(ctx context.Context, tok string) {
	if err := r.client.Set(ctx, r.tokenKey(), tok, 0).Err(); err != nil {
		r.log.Warn("redis token write failed", logger.Component("credentials"), logger.Error(err))
	}
}

// ClearToken removes the token key.
func (r *Redis) ClearToken(ctx context.Context) {
	if err := r.client.Del(ctx, r.tokenKey()).Err(); err != nil {
		r.log.Warn("redis token delete failed", logger.Component("credentials"), logger.Error(err))
	}
}

// Profile returns the serialized profile, absent on miss or backend trouble.
func (r *Redis) Profile(ctx context.Context) ([]byte, bool) {
	val, err := r.client.Get(ctx, r.profileKey()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Debug("redis profile read failed", logger.Component("credentials"), logger.Error(err))
		}
		return nil, false
	}
	if len(val) == 0 {
		return nil, false
	}
	return val, true
}

// SetProfile stores the serialized profile.
func (r *Redis) SetProfile(ctx context.Context, raw []byte) {
	if err := r.client.Set(ctx, r.profileKey(), raw, 0).Err(); err != nil {
		r.log.Warn("redis profile write failed", logger.Component("credentials"), logger.Error(err))
	}
}

// ClearProfile removes the profile key.
func (r *Redis) ClearProfile(ctx context.Context) {
	if err := r.client.Del(ctx, r.profileKey()).Err(); err != nil {
		r.log.Warn("redis profile delete failed", logger.Component("credentials"), logger.Error(err))
	}
}
