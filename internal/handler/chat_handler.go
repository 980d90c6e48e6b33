package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/learnflow/gateway/internal/middleware"
	"github.com/learnflow/gateway/internal/model"
	"github.com/learnflow/gateway/internal/response"
	"github.com/learnflow/gateway/internal/upstream"
	"github.com/learnflow/gateway/internal/validator"
)

// ChatHandler proxies the AI tutoring chat. Message send-then-fetch is
// sequential within one request; concurrent writers from two tabs are
// serialized by the backend, not here.
type ChatHandler struct {
	client *upstream.Client
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(client *upstream.Client) *ChatHandler {
	return &ChatHandler{client: client}
}

// CreateSession godoc
// POST /api/chat/sessions
// Query params: topic, agent_type (student_id comes from the token).
func (h *ChatHandler) CreateSession(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	chatSession := h.client.CreateChatSession(c.Request.Context(), middleware.GetToken(c),
		id.UserID, c.Query("topic"), c.Query("agent_type"))
	response.Success(c, http.StatusCreated, gin.H{"session": chatSession})
}

// Messages godoc
// GET /api/chat/sessions/:id/messages
func (h *ChatHandler) Messages(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	messages := h.client.ChatMessages(c.Request.Context(), middleware.GetToken(c), sessionID)
	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

// SendMessage godoc
// POST /api/chat/sessions/:id/messages
// Awaits the send, then re-fetches the history so the caller sees the
// assistant's reply in the same response.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SendMessageRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	ctx := c.Request.Context()
	token := middleware.GetToken(c)

	sent := h.client.SendChatMessage(ctx, token, sessionID, req.Content)
	messages := h.client.ChatMessages(ctx, token, sessionID)

	response.Success(c, http.StatusCreated, gin.H{
		"message":  sent,
		"messages": messages,
	})
}
