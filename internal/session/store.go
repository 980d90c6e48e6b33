package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no token is stored for a user.
var ErrNotFound = errors.New("session not found")

// Store holds the current session token per user id. Two copies of each
// token exist on purpose: a durable store (file or Redis) written by login
// and logout, and an in-process mirror the request path reads. The
// Synchronizer reconciles the two.
type Store interface {
	Put(ctx context.Context, userID int, token string) error
	Get(ctx context.Context, userID int) (string, error)
	Delete(ctx context.Context, userID int) error
	List(ctx context.Context) (map[int]string, error)
}

// Watcher is implemented by stores that can signal mutations, letting the
// Synchronizer react faster than its fallback ticker.
type Watcher interface {
	Watch() <-chan struct{}
}
