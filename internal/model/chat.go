package model

import "time"

// MessageRole identifies the author side of a chat message.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// ChatSession groups messages for one (student, topic, agent type) triple.
type ChatSession struct {
	ID        int       `json:"id"`
	StudentID int       `json:"student_id"`
	Topic     string    `json:"topic"`
	AgentType string    `json:"agent_type"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessage is one entry in a session's append-only message sequence.
type ChatMessage struct {
	ID        int         `json:"id"`
	SessionID int         `json:"session_id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}

// SendMessageRequest is the payload for posting a message to a session.
type SendMessageRequest struct {
	Content string `json:"content" binding:"required,min=1,max=4000"`
}
