package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/learnflow/gateway/internal/middleware"
	"github.com/learnflow/gateway/internal/response"
	"github.com/learnflow/gateway/internal/upstream"
)

// PageHandler serves the page-data payloads behind the guarded navigation
// paths — everything a page needs, aggregated into one response.
type PageHandler struct {
	client *upstream.Client
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(client *upstream.Client) *PageHandler {
	return &PageHandler{client: client}
}

// Home godoc
// GET /
// The one navigation path the route guard skips: it does its own token check
// so it can serve either a landing or a dashboard payload.
func (h *PageHandler) Home(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		response.Success(c, http.StatusOK, gin.H{
			"page":          "landing",
			"authenticated": false,
		})
		return
	}

	token := middleware.GetToken(c)
	response.Success(c, http.StatusOK, gin.H{
		"page":          "dashboard",
		"authenticated": true,
		"user":          id.User(),
		"stats":         h.client.Stats(c.Request.Context(), token, id.UserID),
		"progress":      h.client.Progress(c.Request.Context(), token, id.UserID),
	})
}

// Login godoc
// GET /login
// Public. Echoes the return path the guard attached, for the post-login
// redirect.
func (h *PageHandler) Login(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"page":   "login",
		"return": c.Query("return"),
	})
}

// Register godoc
// GET /register
func (h *PageHandler) Register(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"page": "register"})
}

// Exercises godoc
// GET /exercises
func (h *PageHandler) Exercises(c *gin.Context) {
	token := middleware.GetToken(c)
	ctx := c.Request.Context()
	response.Success(c, http.StatusOK, gin.H{
		"exercises": h.client.Exercises(ctx, token),
		"topics":    h.client.Topics(ctx, token, queryID(c, "level_id")),
		"levels":    h.client.Levels(ctx, token),
	})
}

// Exercise godoc
// GET /exercises/:id
func (h *PageHandler) Exercise(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"exercise": h.client.Exercise(c.Request.Context(), middleware.GetToken(c), id),
	})
}

// Quizzes godoc
// GET /quizzes
func (h *PageHandler) Quizzes(c *gin.Context) {
	quizzes := h.client.Quizzes(c.Request.Context(), middleware.GetToken(c),
		queryID(c, "topic_id"), queryID(c, "level_id"))
	response.Success(c, http.StatusOK, gin.H{"quizzes": quizzes})
}

// Quiz godoc
// GET /quizzes/:id
// The backend has no single-quiz endpoint; the quiz page picks its quiz out
// of the list, so the gateway does the same.
func (h *PageHandler) Quiz(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	for _, quiz := range h.client.Quizzes(c.Request.Context(), middleware.GetToken(c), 0, 0) {
		if quiz.ID == id {
			response.Success(c, http.StatusOK, gin.H{"quiz": quiz})
			return
		}
	}
	response.Fail(c, http.StatusNotFound, response.ErrNotFound)
}

// Chat godoc
// GET /chat
// Bootstraps the tutoring page: opens (or reuses) the session for this
// student and returns its message history.
func (h *PageHandler) Chat(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	token := middleware.GetToken(c)
	ctx := c.Request.Context()
	chatSession := h.client.CreateChatSession(ctx, token, id.UserID, c.Query("topic"), c.Query("agent_type"))
	response.Success(c, http.StatusOK, gin.H{
		"session":  chatSession,
		"messages": h.client.ChatMessages(ctx, token, chatSession.ID),
	})
}

// Analytics godoc
// GET /analytics
func (h *PageHandler) Analytics(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	token := middleware.GetToken(c)
	ctx := c.Request.Context()
	response.Success(c, http.StatusOK, gin.H{
		"stats":    h.client.Stats(ctx, token, id.UserID),
		"progress": h.client.Progress(ctx, token, id.UserID),
	})
}

// Profile godoc
// GET /profile
func (h *PageHandler) Profile(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	token := middleware.GetToken(c)
	ctx := c.Request.Context()

	user, err := h.client.Me(ctx, token)
	if err != nil {
		user = id.User()
	}
	response.Success(c, http.StatusOK, gin.H{
		"user":  user,
		"stats": h.client.Stats(ctx, token, id.UserID),
	})
}

// Settings godoc
// GET /settings
func (h *PageHandler) Settings(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	user, err := h.client.Me(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		user = id.User()
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// TeacherDashboard godoc
// GET /teacher-dashboard
// Reachable past the route guard by any authenticated user; the teacher
// role is re-checked by RequireTeacher on the route.
func (h *PageHandler) TeacherDashboard(c *gin.Context) {
	token := middleware.GetToken(c)
	ctx := c.Request.Context()
	response.Success(c, http.StatusOK, gin.H{
		"students": h.client.Students(ctx, token),
		"quizzes":  h.client.TeacherQuizzes(ctx, token),
	})
}

// CreateQuizPage godoc
// GET /create-quiz
func (h *PageHandler) CreateQuizPage(c *gin.Context) {
	token := middleware.GetToken(c)
	ctx := c.Request.Context()
	response.Success(c, http.StatusOK, gin.H{
		"topics": h.client.Topics(ctx, token, 0),
		"levels": h.client.Levels(ctx, token),
	})
}

// CreateExercisePage godoc
// GET /create-exercise
func (h *PageHandler) CreateExercisePage(c *gin.Context) {
	token := middleware.GetToken(c)
	ctx := c.Request.Context()
	response.Success(c, http.StatusOK, gin.H{
		"topics": h.client.Topics(ctx, token, 0),
		"levels": h.client.Levels(ctx, token),
	})
}

func queryID(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
