package credentials

import "context"

// Store persists the session token and the serialized user profile across
// process restarts. The token and the profile live under independent keys;
// there is no transactional consistency between them.
//
// Reads fail softly: any storage trouble degrades to absent instead of an
// error, so an unavailable backend behaves exactly like a logged-out state.
// Writes and clears swallow backend errors for the same reason; backends log
// them instead. Tokens are opaque strings and are never validated here.
type Store interface {
	Token(ctx context.Context) (string, bool)
	SetToken(ctx context.Context, token string)
	ClearToken(ctx context.Context)

	Profile(ctx context.Context) ([]byte, bool)
	SetProfile(ctx context.Context, raw []byte)
	ClearProfile(ctx context.Context)
}
