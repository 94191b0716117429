package api

import (
	"context"

	"github.com/arenakit/arena/core/client"
)

// TokenPair is the credential response from a successful sign-in.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthService covers the token endpoints. Interactive sign-in normally
// goes through the session container, which persists the access token;
// this service exposes the raw operations.
type AuthService struct {
	client *client.Client
}

// Login exchanges credentials for a token pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (TokenPair, error) {
	var pair TokenPair
	err := s.client.Post(ctx, "auth/login/", map[string]string{
		"username": username,
		"password": password,
	}, &pair)
	return pair, err
}

// Refresh exchanges a refresh token for a fresh access token.
func (s *AuthService) Refresh(ctx context.Context, refresh string) (string, error) {
	var out struct {
		Access string `json:"access"`
	}
	err := s.client.Post(ctx, "auth/refresh/", map[string]string{"refresh": refresh}, &out)
	return out.Access, err
}

// Verify checks a token against the server. A nil error means the token
// is still accepted.
func (s *AuthService) Verify(ctx context.Context, token string) error {
	return s.client.Post(ctx, "auth/verify/", map[string]string{"token": token}, nil)
}
