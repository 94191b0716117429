package client

import "errors"

var (
	// ErrRequestBuild is returned when a call fails before transmission,
	// e.g. a stage rejects the envelope or the request cannot be constructed.
	ErrRequestBuild = errors.New("failed to build request")
	// ErrNetwork is returned when no response was received: connection
	// failure, DNS trouble, or the fixed per-call deadline elapsing.
	ErrNetwork = errors.New("network failure")
	// ErrDecode is returned when a success payload cannot be decoded into
	// the caller's destination.
	ErrDecode = errors.New("failed to decode response payload")
)

// User-facing notice literals. Server-supplied messages take precedence
// wherever one is present.
const (
	msgRequestFailed  = "request failed"
	msgForbidden      = "access denied"
	msgNotFound       = "requested resource does not exist"
	msgServerError    = "internal server error"
	msgNetwork        = "network connection failed, check your network"
	msgSessionExpired = "your session has expired, sign in again"
)
