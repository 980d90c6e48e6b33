package session

import (
	"context"
	"sync"
)

// MemoryStore is a map-backed Store. It serves as the request-path mirror in
// the server, and as the durable store in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[int]string
	watch  chan struct{}
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens: make(map[int]string),
		watch:  make(chan struct{}, 1),
	}
}

// Put stores the token for a user and signals watchers.
func (s *MemoryStore) Put(_ context.Context, userID int, token string) error {
	s.mu.Lock()
	s.tokens[userID] = token
	s.mu.Unlock()
	s.notify()
	return nil
}

// Get returns the stored token or ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, userID int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[userID]
	if !ok {
		return "", ErrNotFound
	}
	return token, nil
}

// Delete removes the token for a user. Deleting an absent entry is a no-op.
func (s *MemoryStore) Delete(_ context.Context, userID int) error {
	s.mu.Lock()
	delete(s.tokens, userID)
	s.mu.Unlock()
	s.notify()
	return nil
}

// List returns a copy of all stored tokens.
func (s *MemoryStore) List(_ context.Context) (map[int]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]string, len(s.tokens))
	for id, token := range s.tokens {
		out[id] = token
	}
	return out, nil
}

// Watch returns a channel that receives a signal after each mutation.
// The channel is buffered with size 1; coalesced signals are fine since the
// consumer re-reads the full store anyway.
func (s *MemoryStore) Watch() <-chan struct{} {
	return s.watch
}

func (s *MemoryStore) notify() {
	select {
	case s.watch <- struct{}{}:
	default:
	}
}
