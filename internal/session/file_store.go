package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// FileStore persists tokens in a single JSON file. It is the default durable
// store so the gateway works with zero external services; writes go through
// a temp file and rename so a crash never leaves a half-written store.
type FileStore struct {
	mu    sync.Mutex
	path  string
	watch chan struct{}
}

// NewFileStore creates a FileStore at the given path. The file is created
// lazily on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, watch: make(chan struct{}, 1)}
}

// Put stores the token for a user.
func (s *FileStore) Put(_ context.Context, userID int, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.read()
	if err != nil {
		return err
	}
	tokens[strconv.Itoa(userID)] = token
	if err := s.write(tokens); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Get returns the stored token or ErrNotFound.
func (s *FileStore) Get(_ context.Context, userID int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.read()
	if err != nil {
		return "", err
	}
	token, ok := tokens[strconv.Itoa(userID)]
	if !ok {
		return "", ErrNotFound
	}
	return token, nil
}

// Delete removes the token for a user. Deleting an absent entry is a no-op.
func (s *FileStore) Delete(_ context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.read()
	if err != nil {
		return err
	}
	key := strconv.Itoa(userID)
	if _, ok := tokens[key]; !ok {
		return nil
	}
	delete(tokens, key)
	if err := s.write(tokens); err != nil {
		return err
	}
	s.notify()
	return nil
}

// List returns all stored tokens keyed by user id.
func (s *FileStore) List(_ context.Context) (map[int]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tokens, err := s.read()
	if err != nil {
		return nil, err
	}
	out := make(map[int]string, len(tokens))
	for key, token := range tokens {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue // Skip foreign keys rather than failing the whole read.
		}
		out[id] = token
	}
	return out, nil
}

// Watch returns a channel signalled after each mutation.
func (s *FileStore) Watch() <-chan struct{} {
	return s.watch
}

func (s *FileStore) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	tokens := map[string]string{}
	if len(raw) == 0 {
		return tokens, nil
	}
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (s *FileStore) write(tokens map[string]string) error {
	raw, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) notify() {
	select {
	case s.watch <- struct{}{}:
	default:
	}
}
