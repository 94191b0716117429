package client

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// Envelope describes one outgoing call before transmission. It is
// constructed per call and never persisted. Path is relative to the
// configured base URL and keeps the platform's trailing slashes.
type Envelope struct {
	Method string
	Path   string
	Query  url.Values

	// Body is JSON-encoded when Reader is nil.
	Body any

	// Reader supplies a pre-encoded body (multipart uploads). ContentType
	// carries the boundary-bearing media type produced by the encoder.
	Reader      io.Reader
	ContentType string
	Multipart   bool

	// Header holds call-scoped headers accumulated by request stages.
	Header http.Header
}

// clone returns a copy of the envelope with an independent header map, so
// stages stay pure functions from envelope to envelope.
func (e Envelope) clone() Envelope {
	out := e
	out.Header = make(http.Header, len(e.Header)+1)
	for k, v := range e.Header {
		out.Header[k] = append([]string(nil), v...)
	}
	return out
}

// RequestStage transforms an envelope before transmission. Stages run in
// order and must not mutate their input; each returns a new envelope.
type RequestStage func(ctx context.Context, env Envelope) (Envelope, error)

// TokenSource yields the current session token, absent when unauthenticated.
// credentials.Store satisfies it.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// BearerStage attaches the session token as a bearer credential header.
// Calls issued with no token go out without an Authorization header.
func BearerStage(source TokenSource) RequestStage {
	return func(ctx context.Context, env Envelope) (Envelope, error) {
		if source == nil {
			return env, nil
		}
		tok, ok := source.Token(ctx)
		if !ok {
			return env, nil
		}
		out := env.clone()
		out.Header.Set("Authorization", "Bearer "+tok)
		return out, nil
	}
}

// ContentTypeStage applies the default JSON content type, or the multipart
// encoder's own type for multipart bodies so the boundary survives intact.
func ContentTypeStage() RequestStage {
	return func(_ context.Context, env Envelope) (Envelope, error) {
		if env.Header.Get("Content-Type") != "" {
			return env, nil
		}
		out := env.clone()
		switch {
		case env.Multipart:
			if env.ContentType != "" {
				out.Header.Set("Content-Type", env.ContentType)
			}
		case env.Body != nil || env.Reader != nil:
			out.Header.Set("Content-Type", "application/json;charset=UTF-8")
		}
		return out, nil
	}
}

// RequestIDStage tags each call with an X-Request-ID for server-side tracing.
// A custom generator may be supplied; the default is a UUID v4.
func RequestIDStage(generator func() string) RequestStage {
	if generator == nil {
		generator = uuid.NewString
	}
	return func(_ context.Context, env Envelope) (Envelope, error) {
		if env.Header.Get("X-Request-ID") != "" {
			return env, nil
		}
		out := env.clone()
		out.Header.Set("X-Request-ID", generator())
		return out, nil
	}
}
