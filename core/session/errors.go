package session

import "errors"

// ErrMissingAccessToken is returned when a login response completes without
// an access token, which would otherwise leave the container half
// authenticated.
var ErrMissingAccessToken = errors.New("login response carried no access token")
