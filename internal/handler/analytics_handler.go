package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/learnflow/gateway/internal/middleware"
	"github.com/learnflow/gateway/internal/response"
	"github.com/learnflow/gateway/internal/upstream"
)

// AnalyticsHandler serves learning analytics, both the student's own view
// and the teacher roster.
type AnalyticsHandler struct {
	client *upstream.Client
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(client *upstream.Client) *AnalyticsHandler {
	return &AnalyticsHandler{client: client}
}

// Stats godoc
// GET /api/analytics/student/:id/stats
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	stats := h.client.Stats(c.Request.Context(), middleware.GetToken(c), studentID)
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

// Progress godoc
// GET /api/analytics/student/:id/progress
func (h *AnalyticsHandler) Progress(c *gin.Context) {
	studentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	progress := h.client.StudentProgress(c.Request.Context(), middleware.GetToken(c), studentID)
	response.Success(c, http.StatusOK, gin.H{"progress": progress})
}

// Students godoc
// GET /api/analytics/students
func (h *AnalyticsHandler) Students(c *gin.Context) {
	students := h.client.Students(c.Request.Context(), middleware.GetToken(c))
	response.Success(c, http.StatusOK, gin.H{"students": students})
}
