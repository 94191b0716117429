package nav

import "errors"

var (
	// ErrRedirectLoop is returned when a navigation keeps redirecting
	// without reaching an allowed route.
	ErrRedirectLoop = errors.New("navigation redirect loop")
)
