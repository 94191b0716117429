package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenakit/arena/core/client"
	"github.com/arenakit/arena/core/credentials"
	"github.com/arenakit/arena/core/session"
)

func newContainer(t *testing.T, handler http.Handler, store credentials.Store) *session.Container {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	httpc, err := client.New(client.Config{BaseURL: srv.URL, Timeout: 5 * time.Second},
		client.WithCredentials(store),
		client.WithNotifier(client.NotifierFunc(func(context.Context, client.Level, string) {})),
	)
	require.NoError(t, err)
	return session.New(httpc, store)
}

func authHandler(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login/", func(w http.ResponseWriter, r *http.Request) {
		var creds session.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "secret" {
			http.Error(w, `{"detail":"invalid credentials"}`, http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"access":"access-token","refresh":"refresh-token"}`)) //nolint:errcheck
	})
	mux.HandleFunc("GET /users/me/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-token" {
			http.Error(w, `{"detail":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"id":1,"username":"alice","user_type":"athlete","is_staff":true,"is_superuser":false}`)) //nolint:errcheck
	})
	return mux
}

func TestLogin_StoresAccessNotRefresh(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := credentials.NewMemory()
	sess := newContainer(t, authHandler(t), store)

	pair, err := sess.Login(ctx, session.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "access-token", pair.Access)
	assert.Equal(t, "refresh-token", pair.Refresh, "refresh is returned to the caller")

	tok, ok := store.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "access-token", tok, "only the access token is persisted")
	assert.True(t, sess.IsAuthenticated())
	assert.False(t, sess.HasProfile(), "login alone does not resolve an identity")
}

func TestLogin_FailurePropagates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := credentials.NewMemory()
	sess := newContainer(t, authHandler(t), store)

	_, err := sess.Login(ctx, session.Credentials{Username: "alice", Password: "wrong"})
	require.Error(t, err)

	assert.False(t, sess.IsAuthenticated())
	_, ok := store.Token(ctx)
	assert.False(t, ok)
}

func TestLogin_MissingAccessToken(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"refresh":"only-refresh"}`)) //nolint:errcheck
	})
	sess := newContainer(t, handler, credentials.NewMemory())

	_, err := sess.Login(context.Background(), session.Credentials{Username: "a", Password: "b"})
	assert.ErrorIs(t, err, session.ErrMissingAccessToken)
}

func TestFetchProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := credentials.NewMemory()
	sess := newContainer(t, authHandler(t), store)

	_, err := sess.Login(ctx, session.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	profile, err := sess.FetchProfile(ctx)
	require.NoError(t, err)

	assert.Equal(t, "alice", profile.Username)
	assert.True(t, sess.HasProfile())
	assert.True(t, sess.IsStaff())
	assert.False(t, sess.IsAdministrator())

	raw, ok := store.Profile(ctx)
	require.True(t, ok, "profile is mirrored into the credential store")
	var stored session.Profile
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.Equal(t, "alice", stored.Username)
}

func TestLogout_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := credentials.NewMemory()
	sess := newContainer(t, authHandler(t), store)

	_, err := sess.Login(ctx, session.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	_, err = sess.FetchProfile(ctx)
	require.NoError(t, err)

	sess.Logout(ctx)
	sess.Logout(ctx)

	assert.False(t, sess.IsAuthenticated())
	assert.False(t, sess.HasProfile())
	_, ok := store.Token(ctx)
	assert.False(t, ok)
	_, ok = store.Profile(ctx)
	assert.False(t, ok)
}

func TestNew_SeedsFromStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := credentials.NewMemory()
	store.SetToken(ctx, "abc123")
	store.SetProfile(ctx, []byte(`{"username":"alice","is_superuser":true}`))

	sess := newContainer(t, authHandler(t), store)

	assert.True(t, sess.IsAuthenticated())
	assert.True(t, sess.HasProfile())
	assert.True(t, sess.IsAdministrator())
}

func TestNew_DamagedStoredProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := credentials.NewMemory()
	store.SetToken(ctx, "abc123")
	store.SetProfile(ctx, []byte(`{broken`))

	sess := newContainer(t, authHandler(t), store)

	assert.True(t, sess.IsAuthenticated())
	assert.False(t, sess.HasProfile())
}

func TestIsAdministrator_RoleAttributes(t *testing.T) {
	t.Parallel()

	assert.True(t, session.Profile{Username: "x", IsSuperuser: true}.IsAdmin())
	assert.True(t, session.Profile{Username: "x", UserType: "admin"}.IsAdmin())
	assert.False(t, session.Profile{Username: "alice", UserType: "athlete"}.IsAdmin())
}
