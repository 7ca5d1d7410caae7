package store

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"

	"stagehand/internal/types"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendBbolt  = "bbolt"
)

// SessionStore persists the session-scoped demo state: the tour playback
// position and the dismissed-banner set. Save must complete before any
// navigation side effect so a restart can always resume from the last write.
type SessionStore interface {
	Load(ctx context.Context) (*types.SessionState, error)
	Save(ctx context.Context, state *types.SessionState) error
	Clear(ctx context.Context) error
	Close() error
}

// Open selects a backend the same way settings name them. An empty backend
// defaults to the JSON file store.
func Open(backend, path string) (SessionStore, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory:
		return NewMemorySessionStore(), nil
	case "", BackendFile:
		if strings.TrimSpace(path) == "" {
			return nil, errors.New("path is required for the file session store")
		}
		return NewFileSessionStore(path), nil
	case BackendBbolt:
		if strings.TrimSpace(path) == "" {
			return nil, errors.New("path is required for the bbolt session store")
		}
		return NewBboltSessionStore(path)
	default:
		return nil, errors.New("unsupported session store backend: " + backend)
	}
}

// MemorySessionStore backs tests and ephemeral runs.
type MemorySessionStore struct {
	mu    sync.Mutex
	state *types.SessionState
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) Load(ctx context.Context) (*types.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return &types.SessionState{}, nil
	}
	return cloneState(s.state), nil
}

func (s *MemorySessionStore) Save(ctx context.Context, state *types.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if state == nil {
		return errors.New("state is required")
	}
	s.state = cloneState(state)
	return nil
}

func (s *MemorySessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = nil
	return nil
}

func (s *MemorySessionStore) Close() error {
	return nil
}

// FileSessionStore writes the state as JSON with an atomic rename, matching
// the durability the resume path depends on.
type FileSessionStore struct {
	path string
	mu   sync.Mutex
}

func NewFileSessionStore(path string) *FileSessionStore {
	return &FileSessionStore{path: path}
}

func (s *FileSessionStore) Load(ctx context.Context) (*types.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := &types.SessionState{}
	err := readJSON(s.path, state)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return state, nil
		}
		return nil, err
	}
	return state, nil
}

func (s *FileSessionStore) Save(ctx context.Context, state *types.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state == nil {
		return errors.New("state is required")
	}
	return writeJSONAtomic(s.path, state)
}

func (s *FileSessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FileSessionStore) Close() error {
	return nil
}

func cloneState(state *types.SessionState) *types.SessionState {
	if state == nil {
		return nil
	}
	out := &types.SessionState{
		DismissedBanners: append([]string(nil), state.DismissedBanners...),
	}
	if state.Playback != nil {
		pos := *state.Playback
		out.Playback = &pos
	}
	return out
}
