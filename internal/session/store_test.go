package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testStoreBehavior(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty store err = %v, want ErrNotFound", err)
	}

	if err := store.Put(ctx, 1, "student|1|a@b.com"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := store.Put(ctx, 2, "teacher|2|t@b.com"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	token, err := store.Get(ctx, 1)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if token != "student|1|a@b.com" {
		t.Errorf("Get = %q", token)
	}

	// Put overwrites.
	if err := store.Put(ctx, 1, "student|1|new@b.com"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	token, _ = store.Get(ctx, 1)
	if token != "student|1|new@b.com" {
		t.Errorf("Get after overwrite = %q", token)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 || all[1] != "student|1|new@b.com" || all[2] != "teacher|2|t@b.com" {
		t.Errorf("List = %v", all)
	}

	if err := store.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete err = %v, want ErrNotFound", err)
	}

	// Deleting an absent entry is a no-op.
	if err := store.Delete(ctx, 99); err != nil {
		t.Errorf("Delete absent entry err = %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	testStoreBehavior(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	testStoreBehavior(t, NewFileStore(path))
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sessions.json")

	first := NewFileStore(path)
	if err := first.Put(ctx, 5, "student|5|x@y.com"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	second := NewFileStore(path)
	token, err := second.Get(ctx, 5)
	if err != nil {
		t.Fatalf("Get from reopened store failed: %v", err)
	}
	if token != "student|5|x@y.com" {
		t.Errorf("Get = %q", token)
	}
}

func TestFileStoreSkipsForeignKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	if err := os.WriteFile(path, []byte(`{"1":"student|1|a@b.com","version":"2"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	all, err := NewFileStore(path).List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 || all[1] != "student|1|a@b.com" {
		t.Errorf("List = %v, want only the numeric key", all)
	}
}

// Every store implementation must be watchable so the sync worker reacts to
// local mutations without waiting out its ticker.
var (
	_ Watcher = (*MemoryStore)(nil)
	_ Watcher = (*FileStore)(nil)
	_ Watcher = (*RedisStore)(nil)
)

func TestRedisStoreWatchCoalesces(t *testing.T) {
	// Signal plumbing only; no Redis round trip involved.
	s := NewRedisStore(nil, 0)
	s.notify()
	s.notify()

	select {
	case <-s.Watch():
	default:
		t.Error("no watch signal pending")
	}
	select {
	case <-s.Watch():
		t.Error("watch signal not coalesced")
	default:
	}
}

func TestStoreWatchSignalsOnMutation(t *testing.T) {
	ctx := context.Background()
	stores := map[string]interface {
		Store
		Watcher
	}{
		"Memory": NewMemoryStore(),
		"File":   NewFileStore(filepath.Join(t.TempDir(), "sessions.json")),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			if err := store.Put(ctx, 1, "student|1|a@b.com"); err != nil {
				t.Fatalf("Put failed: %v", err)
			}
			select {
			case <-store.Watch():
			default:
				t.Error("no watch signal after Put")
			}

			// Signals coalesce: two mutations, at most one pending signal.
			store.Put(ctx, 2, "student|2|b@b.com")
			store.Delete(ctx, 1)
			select {
			case <-store.Watch():
			default:
				t.Error("no watch signal after coalesced mutations")
			}
			select {
			case <-store.Watch():
				t.Error("watch signal not coalesced")
			default:
			}
		})
	}
}
