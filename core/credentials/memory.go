package credentials

import (
	"context"
	"sync"
)

// Memory is an in-process Store. The zero value is ready to use. It backs
// tests and short-lived programs that do not need durable credentials.
type Memory struct {
	mu      sync.RWMutex
	token   string
	profile []byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Token returns the stored token, absent when empty.
func (m *Memory) Token(_ context.Context) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}

// SetToken stores the token.
func (m *Memory) SetToken(_ context.Context, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

// ClearToken removes the token.
func (m *Memory) ClearToken(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
}

// Profile returns the serialized profile, absent when none is stored.
func (m *Memory) Profile(_ context.Context) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.profile) == 0 {
		return nil, false
	}
	out := make([]byte, len(m.profile))
	copy(out, m.profile)
	return out, true
}

// SetProfile stores the serialized profile.
func (m *Memory) SetProfile(_ context.Context, raw []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = make([]byte, len(raw))
	copy(m.profile, raw)
}

// ClearProfile removes the serialized profile.
func (m *Memory) ClearProfile(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = nil
}
