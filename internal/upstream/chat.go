package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/learnflow/gateway/internal/model"
)

// CreateChatSession opens (or reuses) a session for one (student, topic,
// agent type) triple. Parameters go as query params, matching the backend's
// schema.
func (c *Client) CreateChatSession(ctx context.Context, token string, studentID int, topic, agentType string) model.ChatSession {
	if agentType == "" {
		agentType = "general"
	}
	params := url.Values{}
	params.Set("student_id", strconv.Itoa(studentID))
	params.Set("topic", topic)
	params.Set("agent_type", agentType)
	path := "/chat/sessions/?" + params.Encode()

	var out model.ChatSession
	if err := c.post(ctx, path, token, nil, &out); err != nil {
		c.fallback(path, err)
		return FallbackChatSession(studentID, topic, agentType)
	}
	return out
}

// ChatMessages returns a session's messages in backend order. Callers that
// just sent a message must await SendChatMessage before re-fetching, or they
// will miss the assistant's reply.
func (c *Client) ChatMessages(ctx context.Context, token string, sessionID int) []model.ChatMessage {
	path := fmt.Sprintf("/chat/sessions/%d/messages", sessionID)
	var out []model.ChatMessage
	if err := c.get(ctx, path, token, &out); err != nil {
		c.fallback(path, err)
		return FallbackChatMessages(sessionID)
	}
	return out
}

// sendMessagePayload matches the backend's message schema.
type sendMessagePayload struct {
	SessionID       int               `json:"session_id"`
	Role            model.MessageRole `json:"role"`
	Content         string            `json:"content"`
	MessageMetadata map[string]string `json:"message_metadata"`
}

// SendChatMessage appends a user message to a session.
func (c *Client) SendChatMessage(ctx context.Context, token string, sessionID int, content string) model.ChatMessage {
	path := fmt.Sprintf("/chat/sessions/%d/messages", sessionID)
	payload := sendMessagePayload{
		SessionID:       sessionID,
		Role:            model.MessageRoleUser,
		Content:         content,
		MessageMetadata: map[string]string{},
	}

	var out model.ChatMessage
	if err := c.post(ctx, path, token, payload, &out); err != nil {
		c.fallback(path, err)
		return FallbackSentMessage(sessionID, content)
	}
	return out
}
