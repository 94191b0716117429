package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/arenakit/arena"
	"github.com/arenakit/arena/pkg/logger"
)

// Config holds the environment-resolved client settings.
type Config struct {
	// BaseURL is the platform API root, including the /api prefix.
	BaseURL string `env:"ARENA_BASE_URL" envDefault:"http://localhost:8000/api"`
	// Timeout is the fixed per-call deadline; an elapsed deadline fails the
	// call as a network failure.
	Timeout time.Duration `env:"ARENA_TIMEOUT" envDefault:"15s"`
}

// CredentialStore is the slice of the credential store the client needs:
// token reads for the bearer stage and clears for the session-expiry flow.
type CredentialStore interface {
	TokenSource
	ClearToken(ctx context.Context)
	ClearProfile(ctx context.Context)
}

// SessionResetter clears in-memory session state on forced invalidation.
// The session container registers itself here.
type SessionResetter interface {
	Reset(ctx context.Context)
}

// Navigator moves the owning application to its login route after a
// confirmed session expiry. The nav router registers itself here.
type Navigator interface {
	NavigateToLogin(ctx context.Context)
}

// Client is the single chokepoint for every outbound platform call. It runs
// an explicit ordered list of request stages, dispatches with a fixed
// deadline, classifies every failure, notifies, and re-signals the error to
// the caller.
type Client struct {
	http     *http.Client
	base     *url.URL
	timeout  time.Duration
	stages   []RequestStage
	creds    CredentialStore
	notifier Notifier
	confirm  Confirmer
	log      *slog.Logger

	mu        sync.RWMutex
	resetter  SessionResetter
	navigator Navigator
}

// Option configures the client.
type Option func(*Client)

// WithCredentials wires the credential store used by the bearer stage and
// the 401 teardown.
func WithCredentials(store CredentialStore) Option {
	return func(c *Client) { c.creds = store }
}

// WithNotifier sets the transient notice sink.
func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithConfirmer sets the blocking confirmation source for 401 handling.
func WithConfirmer(cf Confirmer) Option {
	return func(c *Client) {
		if cf != nil {
			c.confirm = cf
		}
	}
}

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithStages replaces the default request stage pipeline entirely. Stages
// run in the given order before every transmission.
func WithStages(stages ...RequestStage) Option {
	return func(c *Client) { c.stages = stages }
}

// New creates a client for the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errors.Join(ErrRequestBuild, err)
	}

	c := &Client{
		http:    &http.Client{},
		base:    base,
		timeout: cfg.Timeout,
		confirm: DenyConfirmer(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = NewLogNotifier(c.log)
	}
	if c.stages == nil {
		c.stages = []RequestStage{
			BearerStage(c.creds),
			ContentTypeStage(),
			RequestIDStage(nil),
		}
	}
	return c, nil
}

// SetSessionResetter registers the session container cleared on a confirmed
// session expiry. Safe to call during wiring, before the client is used.
func (c *Client) SetSessionResetter(r SessionResetter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetter = r
}

// SetNavigator registers the router navigated to the login route on a
// confirmed session expiry.
func (c *Client) SetNavigator(n Navigator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.navigator = n
}

// Do executes the envelope and decodes a 2xx payload into out (ignored when
// out is nil; a *[]byte receives the raw body without decoding). Callers receive either the unwrapped payload or an error;
// the transport envelope never leaks. Every failure is notified exactly once
// and then re-signaled, so call sites can layer their own recovery.
func (c *Client) Do(ctx context.Context, env Envelope, out any) error {
	start := time.Now()

	if env.Header == nil {
		env.Header = make(http.Header)
	}

	var err error
	for _, stage := range c.stages {
		if env, err = stage(ctx, env); err != nil {
			return c.failBuild(ctx, env, err)
		}
	}

	req, err := c.buildRequest(ctx, env)
	if err != nil {
		return c.failBuild(ctx, env, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.notifier.Notify(ctx, LevelError, msgNetwork)
		c.log.Warn("no response received",
			logger.Component("client"),
			logger.Method(env.Method),
			logger.Path(env.Path),
			logger.Error(err),
		)
		return errors.Join(ErrNetwork, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := readBody(resp)
	if err != nil {
		c.notifier.Notify(ctx, LevelError, msgNetwork)
		return errors.Join(ErrNetwork, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		switch dst := out.(type) {
		case nil:
		case *[]byte:
			// Non-JSON payloads (file exports) pass through untouched.
			*dst = body
		default:
			if len(body) > 0 {
				if err := json.Unmarshal(body, out); err != nil {
					c.notifier.Notify(ctx, LevelError, err.Error())
					return errors.Join(ErrDecode, err)
				}
			}
		}
		c.log.Debug("request completed",
			logger.Component("client"),
			logger.Method(env.Method),
			logger.Path(env.Path),
			logger.StatusCode(resp.StatusCode),
			logger.RequestID(env.Header.Get("X-Request-ID")),
			logger.Elapsed(start),
		)
		return nil
	}

	return c.classify(ctx, env, resp.StatusCode, body)
}

// failBuild handles the request-construction failure branch: notify with the
// error's own message, then re-signal.
func (c *Client) failBuild(ctx context.Context, env Envelope, err error) error {
	c.notifier.Notify(ctx, LevelError, err.Error())
	c.log.Warn("request construction failed",
		logger.Component("client"),
		logger.Method(env.Method),
		logger.Path(env.Path),
		logger.Error(err),
	)
	return errors.Join(ErrRequestBuild, err)
}

func (c *Client) buildRequest(ctx context.Context, env Envelope) (*http.Request, error) {
	if env.Method == "" || env.Path == "" {
		return nil, errors.New("envelope requires method and path")
	}

	target := c.base.JoinPath(env.Path)
	if len(env.Query) > 0 {
		target.RawQuery = env.Query.Encode()
	}

	body := env.Reader
	if body == nil && env.Body != nil {
		raw, err := json.Marshal(env.Body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, env.Method, target.String(), body)
	if err != nil {
		return nil, err
	}
	for k, vals := range env.Header {
		req.Header[k] = vals
	}
	return req, nil
}

// classify maps a transport-completed failure onto the error taxonomy,
// performs the notification side effect, and returns the classified error.
func (c *Client) classify(ctx context.Context, env Envelope, status int, body []byte) error {
	apiErr := &arena.Error{
		Status:  status,
		Message: serverMessage(body, msgRequestFailed),
	}

	switch status {
	case http.StatusUnauthorized:
		c.handleUnauthorized(ctx)
	case http.StatusForbidden:
		c.notifier.Notify(ctx, LevelError, msgForbidden)
	case http.StatusNotFound:
		c.notifier.Notify(ctx, LevelError, msgNotFound)
	case http.StatusInternalServerError:
		c.notifier.Notify(ctx, LevelError, serverMessage(body, msgServerError))
	default:
		c.notifier.Notify(ctx, LevelError, apiErr.Message)
	}

	c.log.Warn("request rejected",
		logger.Component("client"),
		logger.Method(env.Method),
		logger.Path(env.Path),
		logger.StatusCode(status),
		logger.RequestID(env.Header.Get("X-Request-ID")),
		logger.Error(apiErr),
	)
	return apiErr
}

// handleUnauthorized runs the session-expiry recovery flow: one blocking
// confirmation per failing call; on acknowledgement the credential store and
// session state are cleared and the application navigates to its login
// route. Dismissal leaves everything in place; the call still fails.
func (c *Client) handleUnauthorized(ctx context.Context) {
	if c.confirm.Confirm(ctx, msgSessionExpired) != DecisionProceed {
		return
	}

	if c.creds != nil {
		c.creds.ClearToken(ctx)
		c.creds.ClearProfile(ctx)
	}

	c.mu.RLock()
	resetter, navigator := c.resetter, c.navigator
	c.mu.RUnlock()

	if resetter != nil {
		resetter.Reset(ctx)
	}
	if navigator != nil {
		navigator.NavigateToLogin(ctx)
	}
	c.log.Info("session invalidated", logger.Component("client"))
}

// serverMessage resolves the user-facing message from a failure payload:
// the detail field, then message, then the supplied literal.
func serverMessage(body []byte, fallback string) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fallback
}
