package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/learnflow/gateway/internal/middleware"
	"github.com/learnflow/gateway/internal/model"
	"github.com/learnflow/gateway/internal/session"
	"github.com/learnflow/gateway/internal/upstream"
)

// chatBackend serves a message list that grows by a batch on every poll, so
// the stream always has something to relay.
type chatBackend struct {
	mu     sync.Mutex
	nextID int
}

func (b *chatBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	messages := make([]model.ChatMessage, 0, 40)
	for i := 0; i < 40; i++ {
		b.nextID++
		messages = append(messages, model.ChatMessage{
			ID:        b.nextID,
			SessionID: 1,
			Role:      model.MessageRoleAssistant,
			Content:   fmt.Sprintf("message %d", b.nextID),
		})
	}
	json.NewEncoder(w).Encode(messages)
}

func newStreamServer(t *testing.T, backendURL string) (*httptest.Server, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewMemoryStore()
	h := NewWSHandler(upstream.NewClient(backendURL, zerolog.Nop()), sessions, zerolog.Nop(), nil)
	h.interval = 20 * time.Millisecond

	r := gin.New()
	r.Use(middleware.Identity())
	r.GET("/api/chat/sessions/:id/stream", h.ChatStream)
	return httptest.NewServer(r), sessions
}

func dialStream(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/chat/sessions/1/stream"
	header := http.Header{}
	header.Set(upstream.HeaderSessionID, token)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	return conn
}

func TestChatStreamRelaysDuringPingFlood(t *testing.T) {
	backend := httptest.NewServer(&chatBackend{})
	defer backend.Close()

	srv, sessions := newStreamServer(t, backend.URL)
	defer srv.Close()

	token := "student|1|a@b.com"
	sessions.Put(context.Background(), 1, token)

	conn := dialStream(t, srv, token)
	defer conn.Close()

	// Flood pings from the client while the relay is pushing message
	// batches. Pong and message frames share the connection's write side,
	// so this exercises the outbound serialization.
	stopPings := make(chan struct{})
	go func() {
		for {
			select {
			case <-stopPings:
				return
			default:
				if err := conn.WriteJSON(map[string]string{"action": "ping"}); err != nil {
					return
				}
				time.Sleep(time.Millisecond)
			}
		}
	}()
	defer close(stopPings)

	var pongs, messages int
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for pongs < 10 || messages < 100 {
		var event struct {
			Event string `json:"event"`
		}
		if err := conn.ReadJSON(&event); err != nil {
			t.Fatalf("stream died after %d pongs, %d messages: %v", pongs, messages, err)
		}
		switch event.Event {
		case "pong":
			pongs++
		case "message":
			messages++
		case "error":
			t.Fatal("unexpected error event")
		}
	}
}

func TestChatStreamRejectsUnknownAction(t *testing.T) {
	backend := httptest.NewServer(&chatBackend{})
	defer backend.Close()

	srv, sessions := newStreamServer(t, backend.URL)
	defer srv.Close()

	token := "student|1|a@b.com"
	sessions.Put(context.Background(), 1, token)

	conn := dialStream(t, srv, token)
	defer conn.Close()

	if err := conn.WriteJSON(map[string]string{"action": "subscribe"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		var event struct {
			Event string `json:"event"`
			Error string `json:"error"`
		}
		if err := conn.ReadJSON(&event); err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if event.Event == "error" {
			if event.Error != "unknown action" {
				t.Errorf("error = %q", event.Error)
			}
			return
		}
	}
}

func TestChatStreamClosesWhenSessionDropped(t *testing.T) {
	backend := httptest.NewServer(&chatBackend{})
	defer backend.Close()

	srv, sessions := newStreamServer(t, backend.URL)
	defer srv.Close()

	token := "student|1|a@b.com"
	sessions.Put(context.Background(), 1, token)

	conn := dialStream(t, srv, token)
	defer conn.Close()

	sessions.Delete(context.Background(), 1)

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		var event struct {
			Event string `json:"event"`
			Error string `json:"error"`
		}
		if err := conn.ReadJSON(&event); err != nil {
			// Connection closed after the final error frame is also fine.
			return
		}
		if event.Event == "error" && event.Error == "session ended" {
			return
		}
	}
}

func TestChatStreamRequiresIdentity(t *testing.T) {
	backend := httptest.NewServer(&chatBackend{})
	defer backend.Close()

	srv, _ := newStreamServer(t, backend.URL)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/chat/sessions/1/stream"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		t.Fatal("dial without a token should fail")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("handshake status = %v, want 401", resp)
	}
}
