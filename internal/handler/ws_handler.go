package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/learnflow/gateway/internal/middleware"
	"github.com/learnflow/gateway/internal/session"
	"github.com/learnflow/gateway/internal/upstream"
	ws "github.com/learnflow/gateway/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams chat messages to the browser. The backend only offers
// request/response message endpoints, so the stream is a relay: it polls the
// message list and pushes anything it has not delivered yet.
type WSHandler struct {
	client   *upstream.Client
	sessions session.Store
	log      zerolog.Logger
	upgrader websocket.Upgrader
	interval time.Duration
}

// NewWSHandler creates a new WSHandler. sessions is the in-process session
// mirror: a stream closes within one sync tick of the user logging out
// elsewhere.
func NewWSHandler(client *upstream.Client, sessions session.Store, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		client:   client,
		sessions: sessions,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
		interval: 2 * time.Second,
	}
}

// ChatStream godoc
// WS /api/chat/sessions/:id/stream
// Pushes each new message of the session; accepts "send" and "ping" actions
// from the client. All frames leave through the single writer loop below —
// the connection allows one concurrent writer, so the reader goroutine
// enqueues its replies instead of writing them.
func (h *WSHandler) ChatStream(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	token := middleware.GetToken(c)
	wsLog := h.log.With().Int("session_id", sessionID).Logger()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	outbound := make(chan interface{}, 16)
	enqueue := func(v interface{}) {
		select {
		case outbound <- v:
		case <-ctx.Done():
		}
	}

	// Reader loop: client actions arrive here; cancels the stream on error.
	go func() {
		defer cancel()
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}

			var envelope ws.RequestEnvelope
			if err := json.Unmarshal(raw, &envelope); err != nil {
				enqueue(ws.ErrorResponse{Event: ws.EventError, Error: "malformed payload"})
				continue
			}

			switch envelope.Action {
			case ws.ActionPing:
				enqueue(ws.PongResponse{Event: ws.EventPong})
			case ws.ActionSend:
				var req ws.SendRequest
				if err := json.Unmarshal(raw, &req); err != nil || req.Content == "" {
					enqueue(ws.ErrorResponse{Event: ws.EventError, Error: "malformed payload"})
					continue
				}
				h.client.SendChatMessage(ctx, token, sessionID, req.Content)
			default:
				enqueue(ws.ErrorResponse{Event: ws.EventError, Error: "unknown action"})
			}
		}
	}()

	// Writer loop: the only goroutine touching the connection's write side.
	lastID := 0
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case v := <-outbound:
			if err := ws.WriteTyped(conn, v); err != nil {
				wsLog.Debug().Err(err).Msg("Client gone, closing stream")
				return
			}

		case <-ticker.C:
			// Stop streaming once the session mirror no longer knows this
			// user (logout in another tab; converges within one sync tick).
			if _, err := h.sessions.Get(ctx, id.UserID); err != nil {
				ws.WriteError(conn, "session ended")
				return
			}

			for _, msg := range h.client.ChatMessages(ctx, token, sessionID) {
				if msg.ID <= lastID {
					continue
				}
				if err := ws.WriteTyped(conn, ws.MessageEvent{Event: ws.EventMessage, Message: msg}); err != nil {
					wsLog.Debug().Err(err).Msg("Client gone, closing stream")
					return
				}
				lastID = msg.ID
			}
		}
	}
}
