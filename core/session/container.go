package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/arenakit/arena/core/client"
	"github.com/arenakit/arena/core/credentials"
	"github.com/arenakit/arena/pkg/logger"
	"github.com/arenakit/arena/pkg/token"
)

const (
	loginPath   = "auth/login/"
	profilePath = "users/me/"
)

// Container is the single source of truth for authentication state. It holds
// the session token and user profile, mirrors them into the credential store
// for durability, and exposes derived authorization flags that never require
// a network round trip.
//
// The container tolerates overlapping in-flight calls: all state lives
// behind a RWMutex, and a forced invalidation from one call does not cancel
// or retry the others.
type Container struct {
	client *client.Client
	creds  credentials.Store
	log    *slog.Logger

	mu      sync.RWMutex
	token   string
	profile Profile
}

// Option configures the container.
type Option func(*Container)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Container) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a container seeded from the credential store's durable values,
// so a reload resumes the prior session. A stored token that already looks
// expired is kept (the server decides validity) but logged.
func New(httpc *client.Client, store credentials.Store, opts ...Option) *Container {
	c := &Container{
		client: httpc,
		creds:  store,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	ctx := context.Background()
	if store != nil {
		if tok, ok := store.Token(ctx); ok {
			c.token = tok
			if token.LooksExpired(tok, time.Now()) {
				c.log.Debug("stored session token looks expired",
					logger.Component("session"))
			}
		}
		if raw, ok := store.Profile(ctx); ok {
			var p Profile
			if err := json.Unmarshal(raw, &p); err != nil {
				c.log.Debug("stored profile unreadable",
					logger.Component("session"), logger.Error(err))
			} else {
				c.profile = p
			}
		}
	}
	return c
}

// Login authenticates against the platform and stores the access token as
// the session token, in memory and in the credential store. The refresh
// token is handed back to the caller and deliberately not persisted.
// Failures propagate exactly as the HTTP client surfaced them.
func (c *Container) Login(ctx context.Context, creds Credentials) (*TokenPair, error) {
	var pair TokenPair
	if err := c.client.Post(ctx, loginPath, creds, &pair); err != nil {
		return nil, err
	}
	if pair.Access == "" {
		return nil, ErrMissingAccessToken
	}

	c.mu.Lock()
	c.token = pair.Access
	c.mu.Unlock()

	if c.creds != nil {
		c.creds.SetToken(ctx, pair.Access)
	}

	c.log.Info("session established",
		logger.Component("session"),
		logger.Username(creds.Username),
	)
	return &pair, nil
}

// FetchProfile retrieves the current identity and stores it as the user
// profile, in memory and serialized into the credential store.
func (c *Container) FetchProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.client.Get(ctx, profilePath, nil, &p); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.profile = p
	c.mu.Unlock()

	if c.creds != nil {
		if raw, err := json.Marshal(p); err == nil {
			c.creds.SetProfile(ctx, raw)
		}
	}
	return &p, nil
}

// Logout clears the session token and user profile, in memory and in the
// credential store, synchronously and without any network call. Calling it
// on an already logged-out container is a no-op.
func (c *Container) Logout(ctx context.Context) {
	c.mu.Lock()
	c.token = ""
	c.profile = Profile{}
	c.mu.Unlock()

	if c.creds != nil {
		c.creds.ClearToken(ctx)
		c.creds.ClearProfile(ctx)
	}
	c.log.Info("session cleared", logger.Component("session"))
}

// Reset implements the HTTP client's forced-invalidation hook; it is a
// Logout triggered by a confirmed session expiry rather than the user.
func (c *Container) Reset(ctx context.Context) {
	c.Logout(ctx)
}

// Token returns the current session token, absent when unauthenticated.
// It also satisfies the client's TokenSource, so the container itself can
// drive the bearer stage.
func (c *Container) Token(_ context.Context) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.token != ""
}

// Profile returns a copy of the current user profile and whether an
// identity has been resolved.
func (c *Container) Profile() (Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile, c.profile.HasIdentity()
}

// IsAuthenticated reports whether a session token is present.
func (c *Container) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// IsAdministrator reports whether the resolved profile carries the
// administrator role.
func (c *Container) IsAdministrator() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile.IsAdmin()
}

// IsStaff reports whether the resolved profile carries the staff flag.
func (c *Container) IsStaff() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile.IsStaff
}

// HasProfile reports whether an identity has been resolved for this session.
func (c *Container) HasProfile() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile.HasIdentity()
}
