package api_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenakit/arena/api"
)

func TestListParamsValues(t *testing.T) {
	t.Parallel()

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, api.ListParams{}.Values())
	})

	t.Run("all parameters encoded", func(t *testing.T) {
		t.Parallel()

		p := api.ListParams{
			Page:     3,
			PageSize: 50,
			Search:   "marathon",
			Ordering: "-start_time",
			Filters:  url.Values{"status": {"published"}},
		}

		v := p.Values()
		assert.Equal(t, "3", v.Get("page"))
		assert.Equal(t, "50", v.Get("page_size"))
		assert.Equal(t, "marathon", v.Get("search"))
		assert.Equal(t, "-start_time", v.Get("ordering"))
		assert.Equal(t, "published", v.Get("status"))
	})

	t.Run("filters do not override pagination", func(t *testing.T) {
		t.Parallel()

		p := api.ListParams{
			Page:    2,
			Filters: url.Values{"page": {"99"}},
		}
		assert.Equal(t, "2", p.Values().Get("page"))
	})
}

func TestPageEnvelope(t *testing.T) {
	t.Parallel()

	raw := `{"count":12,"next":"http://h/api/events/?page=2","previous":null,"results":[{"id":1},{"id":2}]}`

	var page api.Page[struct {
		ID int64 `json:"id"`
	}]
	require.NoError(t, json.Unmarshal([]byte(raw), &page))

	assert.Equal(t, 12, page.Count)
	assert.True(t, page.HasNext())
	assert.False(t, page.HasPrevious())
	assert.Len(t, page.Results, 2)
}
