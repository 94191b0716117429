package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned when the raw token does not parse as a JWT.
// Opaque tokens are legal everywhere else in the SDK; only inspection
// requires JWT structure.
var ErrNotJWT = errors.New("token is not a parseable JWT")

// Claims carries the claim subset surfaced by Inspect. The platform issues
// SimpleJWT access tokens, which put the account ID under "user_id".
type Claims struct {
	UserID    int64
	TokenType string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

type accessClaims struct {
	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// Inspect decodes the token without verifying its signature and returns the
// diagnostic claim subset. It must never be used to grant access; the server
// remains the only authority on token validity.
func Inspect(raw string) (Claims, error) {
	var claims accessClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return Claims{}, errors.Join(ErrNotJWT, err)
	}

	out := Claims{
		UserID:    claims.UserID,
		TokenType: claims.TokenType,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}

// LooksExpired reports whether the token is a JWT whose expiry has passed.
// Opaque or malformed tokens are never reported as expired, so callers can
// use this purely as a logging hint for stale stored credentials.
func LooksExpired(raw string, now time.Time) bool {
	claims, err := Inspect(raw)
	if err != nil {
		return false
	}
	return !claims.ExpiresAt.IsZero() && claims.ExpiresAt.Before(now)
}
