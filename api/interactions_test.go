package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenakit/arena/api"
)

func TestInteractionsLike(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /interactions/likes/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "event", body["target_type"])
		assert.EqualValues(t, 7, body["target_id"])
		w.WriteHeader(http.StatusCreated)
	})

	svc := newTestAPI(t, mux)
	err := svc.Interactions.Like(context.Background(), api.Target{Type: "event", ID: 7})
	require.NoError(t, err)
}

func TestInteractionsIsLiked(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /interactions/likes/check/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "event", r.URL.Query().Get("target_type"))
		assert.Equal(t, "7", r.URL.Query().Get("target_id"))
		json.NewEncoder(w).Encode(map[string]bool{"liked": true}) //nolint:errcheck
	})

	svc := newTestAPI(t, mux)
	liked, err := svc.Interactions.IsLiked(context.Background(), api.Target{Type: "event", ID: 7})
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestInteractionsCreateComment(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /interactions/comments/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "great event", body["content"])
		assert.NotContains(t, body, "parent")

		json.NewEncoder(w).Encode(map[string]any{"id": 11, "content": "great event"}) //nolint:errcheck
	})

	svc := newTestAPI(t, mux)
	c, err := svc.Interactions.CreateComment(context.Background(), api.CommentRequest{
		Target:  api.Target{Type: "event", ID: 7},
		Content: "great event",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), c.ID)
}

func TestInteractionsMyFavorites(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /interactions/favorites/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"count":    1,
			"next":     nil,
			"previous": nil,
			"results":  []map[string]any{{"id": 3, "target_type": "event", "target_id": 7}},
		})
	})

	svc := newTestAPI(t, mux)
	page, err := svc.Interactions.MyFavorites(context.Background(), api.ListParams{})
	require.NoError(t, err)

	require.Len(t, page.Results, 1)
	assert.Equal(t, int64(7), page.Results[0].TargetID)
}
