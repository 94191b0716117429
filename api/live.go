package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/arenakit/arena/core/client"
	"github.com/arenakit/arena/pkg/logger"
)

// ErrStreamClosed is returned when a live stream terminates from the
// server side.
var ErrStreamClosed = errors.New("live stream closed")

// frame type emitted by the comment word-cloud stream.
const frameWordCloudUpdate = "wordcloud_update"

// WordCloudEntry is one term of the live comment word cloud.
type WordCloudEntry struct {
	Text   string `json:"text"`
	Weight int    `json:"weight"`
}

type wordCloudFrame struct {
	Type    string           `json:"type"`
	Payload []WordCloudEntry `json:"payload"`
}

// LiveCommentsOption configures the stream client.
type LiveCommentsOption func(*LiveComments)

// WithDialer replaces the websocket dialer.
func WithDialer(d *websocket.Dialer) LiveCommentsOption {
	return func(l *LiveComments) {
		if d != nil {
			l.dialer = d
		}
	}
}

// WithStreamLogger sets the logger for stream lifecycle events.
func WithStreamLogger(log *slog.Logger) LiveCommentsOption {
	return func(l *LiveComments) {
		if log != nil {
			l.log = log
		}
	}
}

// LiveComments streams word-cloud snapshots of live comment activity
// over a websocket. Each update replaces the previous snapshot.
type LiveComments struct {
	endpoint string
	tokens   client.TokenSource
	dialer   *websocket.Dialer
	log      *slog.Logger
}

// NewLiveComments builds a stream client for the given ws:// or wss://
// endpoint, typically "<host>/ws/comments/wordcloud/". The token source
// supplies the bearer header on dial; a nil source dials anonymously.
func NewLiveComments(endpoint string, tokens client.TokenSource, opts ...LiveCommentsOption) *LiveComments {
	l := &LiveComments{
		endpoint: endpoint,
		tokens:   tokens,
		dialer:   websocket.DefaultDialer,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Watch dials the stream and delivers word-cloud snapshots until ctx is
// canceled or the server closes the connection. The returned channel is
// closed on termination; frames of other types are skipped.
func (l *LiveComments) Watch(ctx context.Context) (<-chan []WordCloudEntry, error) {
	header := http.Header{}
	if l.tokens != nil {
		if tok, ok := l.tokens.Token(ctx); ok {
			header.Set("Authorization", "Bearer "+tok)
		}
	}

	conn, resp, err := l.dialer.DialContext(ctx, l.endpoint, header)
	if err != nil {
		if resp != nil {
			resp.Body.Close() //nolint:errcheck
		}
		return nil, errors.Join(client.ErrNetwork, err)
	}
	if resp != nil {
		resp.Body.Close() //nolint:errcheck
	}

	updates := make(chan []WordCloudEntry)
	done := make(chan struct{})

	// The watcher must also wake on reader exit, or a server-side close
	// with a never-canceled context would strand it for the process
	// lifetime.
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		conn.Close() //nolint:errcheck
	}()

	go func() {
		defer close(updates)
		defer close(done)
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				if ctx.Err() == nil {
					l.log.Warn("live stream terminated",
						logger.Component("live"),
						logger.Error(errors.Join(ErrStreamClosed, err)),
					)
				}
				return
			}

			var frame wordCloudFrame
			if err := json.Unmarshal(raw, &frame); err != nil {
				l.log.Warn("undecodable stream frame",
					logger.Component("live"),
					logger.Error(err),
				)
				continue
			}
			if frame.Type != frameWordCloudUpdate {
				continue
			}

			select {
			case updates <- frame.Payload:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}
