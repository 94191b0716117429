package arena_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arenakit/arena"
)

func TestError_ImplementsErrorInterface(t *testing.T) {
	t.Parallel()

	err := &arena.Error{
		Status:  http.StatusNotFound,
		Message: "not found",
	}

	var _ error = err
	assert.Equal(t, "not found (status 404)", err.Error())
}

func TestError_StatusClass(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, (&arena.Error{Status: http.StatusForbidden}).StatusClass())
	assert.Equal(t, 5, (&arena.Error{Status: http.StatusBadGateway}).StatusClass())
}

func TestError_Predicates(t *testing.T) {
	t.Parallel()

	assert.True(t, (&arena.Error{Status: http.StatusUnauthorized}).IsUnauthorized())
	assert.True(t, (&arena.Error{Status: http.StatusForbidden}).IsForbidden())
	assert.True(t, (&arena.Error{Status: http.StatusNotFound}).IsNotFound())
	assert.True(t, (&arena.Error{Status: http.StatusInternalServerError}).IsServerError())
	assert.False(t, (&arena.Error{Status: http.StatusBadRequest}).IsServerError())
}

func TestError_AsTarget(t *testing.T) {
	t.Parallel()

	var wrapped error = errors.Join(errors.New("call failed"), &arena.Error{
		Status:  http.StatusInternalServerError,
		Message: "internal error",
	})

	var apiErr *arena.Error
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, "internal error", apiErr.Message)
}
