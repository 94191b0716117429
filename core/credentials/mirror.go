package credentials

import "context"

// Mirror combines two independent durable locations into one Store. Every
// write and clear reaches both; reads prefer the primary and fall back to
// the secondary when the primary yields nothing. Neither side is
// authoritative for session state; the session container is.
func Mirror(primary, secondary Store) Store {
	return &mirror{primary: primary, secondary: secondary}
}

type mirror struct {
	primary   Store
	secondary Store
}

func (m *mirror) Token(ctx context.Context) (string, bool) {
	if tok, ok := m.primary.Token(ctx); ok {
		return tok, true
	}
	return m.secondary.Token(ctx)
}

func (m *mirror) SetToken(ctx context.Context, tok string) {
	m.primary.SetToken(ctx, tok)
	m.secondary.SetToken(ctx, tok)
}

func (m *mirror) ClearToken(ctx context.Context) {
	m.primary.ClearToken(ctx)
	m.secondary.ClearToken(ctx)
}

func (m *mirror) Profile(ctx context.Context) ([]byte, bool) {
	if raw, ok := m.primary.Profile(ctx); ok {
		return raw, true
	}
	return m.secondary.Profile(ctx)
}

func (m *mirror) SetProfile(ctx context.Context, raw []byte) {
	m.primary.SetProfile(ctx, raw)
	m.secondary.SetProfile(ctx, raw)
}

func (m *mirror) ClearProfile(ctx context.Context) {
	m.primary.ClearProfile(ctx)
	m.secondary.ClearProfile(ctx)
}
