package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/learnflow/gateway/internal/model"
)

// Quizzes lists quizzes, optionally filtered by topic and/or level.
func (c *Client) Quizzes(ctx context.Context, token string, topicID, levelID int) []model.Quiz {
	path := "/quizzes/"
	params := url.Values{}
	queryInt(params, "topic_id", topicID)
	queryInt(params, "level_id", levelID)
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out []model.Quiz
	if err := c.get(ctx, path, token, &out); err != nil {
		c.fallback(path, err)
		return FallbackQuizzes()
	}
	return out
}

// StartQuiz opens a new submission for (quiz, student). Against a reachable
// backend repeated starts yield distinct submission ids; the fallback always
// answers with submission 1.
func (c *Client) StartQuiz(ctx context.Context, token string, quizID, studentID int) model.QuizSubmission {
	path := fmt.Sprintf("/quizzes/%d/start?student_id=%d", quizID, studentID)
	var out model.QuizSubmission
	if err := c.post(ctx, path, token, nil, &out); err != nil {
		c.fallback(path, err)
		return FallbackStartedSubmission(quizID, studentID)
	}
	return out
}

// SubmitQuizAnswer records one answer on an open submission.
func (c *Client) SubmitQuizAnswer(ctx context.Context, token string, quizID, submissionID int, req model.AnswerRequest) model.SubmissionAnswer {
	path := fmt.Sprintf("/quizzes/%d/submissions/%d/answer", quizID, submissionID)
	var out model.SubmissionAnswer
	if err := c.post(ctx, path, token, req, &out); err != nil {
		c.fallback(path, err)
		return FallbackSubmittedAnswer(submissionID, req.QuestionID, req.AnswerText)
	}
	return out
}

// CompleteQuiz closes a submission. Completion is terminal on the backend:
// re-completing an already-completed submission does not change its score.
func (c *Client) CompleteQuiz(ctx context.Context, token string, quizID, submissionID int) model.QuizSubmission {
	path := fmt.Sprintf("/quizzes/%d/submissions/%d/complete", quizID, submissionID)
	var out model.QuizSubmission
	if err := c.post(ctx, path, token, nil, &out); err != nil {
		c.fallback(path, err)
		return FallbackCompletedSubmission(quizID, submissionID)
	}
	return out
}

// QuizSubmission fetches a submission's current state.
func (c *Client) QuizSubmission(ctx context.Context, token string, quizID, submissionID int) model.QuizSubmission {
	path := fmt.Sprintf("/quizzes/%d/submissions/%d", quizID, submissionID)
	var out model.QuizSubmission
	if err := c.get(ctx, path, token, &out); err != nil {
		c.fallback(path, err)
		return FallbackCompletedSubmission(quizID, submissionID)
	}
	return out
}

// TeacherQuizzes lists the requesting teacher's quizzes with aggregates.
func (c *Client) TeacherQuizzes(ctx context.Context, token string) []model.TeacherQuizSummary {
	var out []model.TeacherQuizSummary
	if err := c.get(ctx, "/quizzes/teacher", token, &out); err != nil {
		c.fallback("/quizzes/teacher", err)
		return FallbackTeacherQuizzes()
	}
	return out
}

// CreateQuiz posts a teacher-authored quiz. Surfaces failure like
// CreateExercise.
func (c *Client) CreateQuiz(ctx context.Context, token string, req model.CreateQuizRequest) (model.Quiz, error) {
	var out model.Quiz
	if err := c.post(ctx, "/quizzes/", token, req, &out); err != nil {
		return model.Quiz{}, err
	}
	return out, nil
}
