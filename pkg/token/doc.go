// Package token decodes platform access tokens without signature
// verification, exposing expiry and identity claims for diagnostics only.
// The rest of the SDK treats tokens as opaque strings; this package exists
// so components can log that a stored token already looks stale before the
// server rejects it.
package token
