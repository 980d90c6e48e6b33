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

// ExerciseHandler serves the exercise and curriculum API.
type ExerciseHandler struct {
	client *upstream.Client
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(client *upstream.Client) *ExerciseHandler {
	return &ExerciseHandler{client: client}
}

// List godoc
// GET /api/exercises
func (h *ExerciseHandler) List(c *gin.Context) {
	exercises := h.client.Exercises(c.Request.Context(), middleware.GetToken(c))
	response.Success(c, http.StatusOK, gin.H{"exercises": exercises})
}

// Get godoc
// GET /api/exercises/:id
func (h *ExerciseHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	exercise := h.client.Exercise(c.Request.Context(), middleware.GetToken(c), id)
	response.Success(c, http.StatusOK, gin.H{"exercise": exercise})
}

// Topics godoc
// GET /api/topics
func (h *ExerciseHandler) Topics(c *gin.Context) {
	topics := h.client.Topics(c.Request.Context(), middleware.GetToken(c), queryID(c, "level_id"))
	response.Success(c, http.StatusOK, gin.H{"topics": topics})
}

// Levels godoc
// GET /api/topics/levels
func (h *ExerciseHandler) Levels(c *gin.Context) {
	levels := h.client.Levels(c.Request.Context(), middleware.GetToken(c))
	response.Success(c, http.StatusOK, gin.H{"levels": levels})
}

// Create godoc
// POST /api/exercises
func (h *ExerciseHandler) Create(c *gin.Context) {
	var req model.CreateExerciseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	exercise, err := h.client.CreateExercise(c.Request.Context(), middleware.GetToken(c), req)
	if err != nil {
		response.Fail(c, http.StatusBadGateway, response.ErrBackendUnavailable)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"exercise": exercise})
}
