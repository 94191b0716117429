package credentials

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/arenakit/arena/pkg/logger"
)

// fileState is the on-disk layout: one file, two independent keys.
type fileState struct {
	Token   string          `json:"token,omitempty"`
	Profile json.RawMessage `json:"profile,omitempty"`
}

// File persists credentials in a JSON state file (0600) under the given
// path. Missing or unreadable files degrade to absent; failed writes are
// logged and swallowed, matching the Store contract.
type File struct {
	mu   sync.Mutex
	path string
	log  *slog.Logger
}

// FileOption configures a File store.
type FileOption func(*File)

// WithFileLogger sets the logger used for degraded storage operations.
func WithFileLogger(log *slog.Logger) FileOption {
	return func(f *File) {
		if log != nil {
			f.log = log
		}
	}
}

// NewFile creates a file-backed store at path. The file and its directory
// are created on first write.
func NewFile(path string, opts ...FileOption) *File {
	f := &File{
		path: path,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Token returns the stored token, absent when the file is missing, damaged,
// or holds no token.
func (f *File) Token(_ context.Context) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.read()
	return state.Token, state.Token != ""
}

// SetToken writes the token, preserving the profile key.
func (f *File) SetToken(_ context.Context, tok string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.read()
	state.Token = tok
	f.write(state)
}

// ClearToken removes the token, preserving the profile key.
func (f *File) ClearToken(_ context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.read()
	state.Token = ""
	f.write(state)
}

// Profile returns the serialized profile, absent when none is stored.
func (f *File) Profile(_ context.Context) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.read()
	if len(state.Profile) == 0 {
		return nil, false
	}
	return state.Profile, true
}

// SetProfile writes the serialized profile, preserving the token key.
func (f *File) SetProfile(_ context.Context, raw []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.read()
	state.Profile = json.RawMessage(raw)
	f.write(state)
}

// ClearProfile removes the serialized profile, preserving the token key.
func (f *File) ClearProfile(_ context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := f.read()
	state.Profile = nil
	f.write(state)
}

func (f *File) read() fileState {
	var state fileState

	raw, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.log.Debug("credential file unreadable", logger.Component("credentials"), logger.Error(err))
		}
		return state
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		f.log.Debug("credential file damaged", logger.Component("credentials"), logger.Error(err))
		return fileState{}
	}
	return state
}

func (f *File) write(state fileState) {
	raw, err := json.Marshal(state)
	if err != nil {
		f.log.Warn("credential state not serializable", logger.Component("credentials"), logger.Error(err))
		return
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		f.log.Warn("credential dir unavailable", logger.Component("credentials"), logger.Error(err))
		return
	}
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		f.log.Warn("credential file write failed", logger.Component("credentials"), logger.Error(err))
	}
}
