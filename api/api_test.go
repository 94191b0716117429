package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arenakit/arena/api"
	"github.com/arenakit/arena/core/client"
)

// newTestAPI serves handler on a local listener and returns the service
// set pointed at it. Notices are silenced; failure behavior is covered
// by the client's own tests.
func newTestAPI(t *testing.T, handler http.Handler) *api.API {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := client.New(
		client.Config{BaseURL: srv.URL, Timeout: 5 * time.Second},
		client.WithNotifier(client.NotifierFunc(func(context.Context, client.Level, string) {})),
	)
	require.NoError(t, err)

	return api.New(c)
}
