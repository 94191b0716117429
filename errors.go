package arena

import (
	"fmt"
	"net/http"
)

// Error represents a classified failure surfaced by the HTTP access layer.
// Status carries the transport status code the server answered with; Message
// carries the server-supplied error text after field precedence resolution
// (detail, then message, then a generic literal).
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// StatusClass returns the hundreds class of the status code (4 for 4xx, 5 for 5xx).
func (e *Error) StatusClass() int {
	return e.Status / 100
}

// IsUnauthorized reports whether the failure is a session-invalid response.
func (e *Error) IsUnauthorized() bool { return e.Status == http.StatusUnauthorized }

// IsForbidden reports whether the server denied access to the resource.
func (e *Error) IsForbidden() bool { return e.Status == http.StatusForbidden }

// IsNotFound reports whether the requested resource does not exist.
func (e *Error) IsNotFound() bool { return e.Status == http.StatusNotFound }

// IsServerError reports whether the failure originated on the server side.
func (e *Error) IsServerError() bool { return e.StatusClass() == 5 }
