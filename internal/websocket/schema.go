package websocket

import "github.com/learnflow/gateway/internal/model"

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionSend Action = "send"
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

// SendRequest posts a user message to the session being streamed.
type SendRequest struct {
	Action  Action `json:"action"`
	Content string `json:"content"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventMessage Event = "message"
	EventError   Event = "error"
	EventPong    Event = "pong"
)

// MessageEvent delivers one chat message to the client.
type MessageEvent struct {
	Event   Event             `json:"event"`
	Message model.ChatMessage `json:"message"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
