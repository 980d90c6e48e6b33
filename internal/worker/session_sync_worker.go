package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnflow/gateway/internal/session"
)

// SessionSyncWorker reconciles the durable session store into the in-process
// mirror that request handlers read. The two copies of each token live in
// different execution contexts and cannot share memory, so the worker is the
// bridge: it runs once at start, after every store change notification, and
// on a fixed fallback ticker for mutations that emit no notification (e.g. a
// second gateway instance writing to Redis).
//
// Reconciliation is one-directional (durable → mirror) and swallows errors:
// there is no caller to receive one, so failures are logged at warn and the
// next tick retries.
type SessionSyncWorker struct {
	primary  session.Store
	mirror   session.Store
	interval time.Duration
	log      zerolog.Logger
}

// NewSessionSyncWorker creates a SessionSyncWorker. A non-positive interval
// falls back to 5 seconds.
func NewSessionSyncWorker(primary, mirror session.Store, interval time.Duration, log zerolog.Logger) *SessionSyncWorker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &SessionSyncWorker{
		primary:  primary,
		mirror:   mirror,
		interval: interval,
		log:      log.With().Str("component", "session_sync_worker").Logger(),
	}
}

// Start begins the reconcile loop. Call in a goroutine; returns when ctx is
// cancelled.
func (w *SessionSyncWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	// Converge once before the first tick so a restart does not leave the
	// mirror empty for up to an interval.
	w.Sync(ctx)

	var watch <-chan struct{}
	if watcher, ok := w.primary.(session.Watcher); ok {
		watch = watcher.Watch()
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-watch:
			w.Sync(ctx)
		case <-ticker.C:
			w.Sync(ctx)
		}
	}
}

// Sync performs one reconciliation pass: every durable entry is copied into
// the mirror and mirror-only entries are removed. Never returns an error.
func (w *SessionSyncWorker) Sync(ctx context.Context) {
	want, err := w.primary.List(ctx)
	if err != nil {
		w.log.Warn().Err(err).Msg("List durable sessions failed")
		return
	}

	have, err := w.mirror.List(ctx)
	if err != nil {
		w.log.Warn().Err(err).Msg("List mirror sessions failed")
		return
	}

	for userID, token := range want {
		if have[userID] == token {
			continue
		}
		if err := w.mirror.Put(ctx, userID, token); err != nil {
			w.log.Warn().Err(err).Int("user_id", userID).Msg("Mirror put failed")
		}
	}

	for userID := range have {
		if _, ok := want[userID]; ok {
			continue
		}
		if err := w.mirror.Delete(ctx, userID); err != nil {
			w.log.Warn().Err(err).Int("user_id", userID).Msg("Mirror delete failed")
		}
	}
}
