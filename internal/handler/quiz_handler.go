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

// QuizHandler orchestrates the quiz-taking flow. Scoring lives in the
// backend; the gateway only sequences the start → answer → complete calls.
type QuizHandler struct {
	client *upstream.Client
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(client *upstream.Client) *QuizHandler {
	return &QuizHandler{client: client}
}

// List godoc
// GET /api/quizzes
func (h *QuizHandler) List(c *gin.Context) {
	quizzes := h.client.Quizzes(c.Request.Context(), middleware.GetToken(c),
		queryID(c, "topic_id"), queryID(c, "level_id"))
	response.Success(c, http.StatusOK, gin.H{"quizzes": quizzes})
}

// Start godoc
// POST /api/quizzes/:id/start
// Starting the same quiz twice yields two distinct submissions when the
// backend is reachable.
func (h *QuizHandler) Start(c *gin.Context) {
	quizID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}
	id, ok := middleware.GetIdentity(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	submission := h.client.StartQuiz(c.Request.Context(), middleware.GetToken(c), quizID, id.UserID)
	response.Success(c, http.StatusCreated, gin.H{"submission": submission})
}

// Answer godoc
// POST /api/quizzes/:id/submissions/:sid/answer
func (h *QuizHandler) Answer(c *gin.Context) {
	quizID, submissionID, ok := quizSubmissionIDs(c)
	if !ok {
		return
	}

	var req model.AnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	answer := h.client.SubmitQuizAnswer(c.Request.Context(), middleware.GetToken(c), quizID, submissionID, req)
	response.Success(c, http.StatusOK, gin.H{"answer": answer})
}

// Complete godoc
// POST /api/quizzes/:id/submissions/:sid/complete
// Terminal: the backend keeps the first recorded score on repeat calls.
func (h *QuizHandler) Complete(c *gin.Context) {
	quizID, submissionID, ok := quizSubmissionIDs(c)
	if !ok {
		return
	}

	submission := h.client.CompleteQuiz(c.Request.Context(), middleware.GetToken(c), quizID, submissionID)
	response.Success(c, http.StatusOK, gin.H{"submission": submission})
}

// Submission godoc
// GET /api/quizzes/:id/submissions/:sid
func (h *QuizHandler) Submission(c *gin.Context) {
	quizID, submissionID, ok := quizSubmissionIDs(c)
	if !ok {
		return
	}

	submission := h.client.QuizSubmission(c.Request.Context(), middleware.GetToken(c), quizID, submissionID)
	response.Success(c, http.StatusOK, gin.H{"submission": submission})
}

// TeacherList godoc
// GET /api/quizzes/teacher
func (h *QuizHandler) TeacherList(c *gin.Context) {
	quizzes := h.client.TeacherQuizzes(c.Request.Context(), middleware.GetToken(c))
	response.Success(c, http.StatusOK, gin.H{"quizzes": quizzes})
}

// Create godoc
// POST /api/quizzes
func (h *QuizHandler) Create(c *gin.Context) {
	var req model.CreateQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	quiz, err := h.client.CreateQuiz(c.Request.Context(), middleware.GetToken(c), req)
	if err != nil {
		response.Fail(c, http.StatusBadGateway, response.ErrBackendUnavailable)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"quiz": quiz})
}

func quizSubmissionIDs(c *gin.Context) (quizID, submissionID int, ok bool) {
	quizID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, 0, false
	}
	submissionID, err = strconv.Atoi(c.Param("sid"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, 0, false
	}
	return quizID, submissionID, true
}
