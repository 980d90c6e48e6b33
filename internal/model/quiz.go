package model

import "time"

// QuestionType enumerates the supported quiz question kinds.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionShortAnswer    QuestionType = "short_answer"
)

// Quiz owns an ordered sequence of questions.
type Quiz struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	TopicID     int            `json:"topic_id,omitempty"`
	LevelID     int            `json:"level_id,omitempty"`
	Questions   []QuizQuestion `json:"questions"`
}

// QuizQuestion is a single question with its options and correct answer.
type QuizQuestion struct {
	ID            int          `json:"id"`
	QuestionText  string       `json:"question_text"`
	QuestionType  QuestionType `json:"question_type"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
}

// QuizSubmission tracks one student's attempt at a quiz. The backend owns
// the lifecycle: started → answers recorded → completed with a score.
type QuizSubmission struct {
	ID          int        `json:"id"`
	StudentID   int        `json:"student_id"`
	QuizID      int        `json:"quiz_id"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Score       *float64   `json:"score,omitempty"`
	Passed      *bool      `json:"passed,omitempty"`
}

// SubmissionAnswer is the backend's record of a single answered question.
type SubmissionAnswer struct {
	ID           int    `json:"id"`
	SubmissionID int    `json:"submission_id"`
	QuestionID   int    `json:"question_id"`
	AnswerText   string `json:"answer_text"`
	IsCorrect    bool   `json:"is_correct"`
	PointsEarned int    `json:"points_earned"`
}

// AnswerRequest is the payload for answering one question of a submission.
type AnswerRequest struct {
	QuestionID int    `json:"question_id" binding:"required"`
	AnswerText string `json:"answer_text" binding:"required"`
}

// CreateQuizRequest is the teacher-facing payload for a new quiz.
type CreateQuizRequest struct {
	Title       string                      `json:"title" binding:"required,min=2,max=200"`
	Description string                      `json:"description" binding:"omitempty,max=1000"`
	TopicID     int                         `json:"topic_id" binding:"omitempty"`
	Questions   []CreateQuizQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

// CreateQuizQuestionRequest is one question within CreateQuizRequest.
type CreateQuizQuestionRequest struct {
	QuestionText  string       `json:"question_text" binding:"required"`
	QuestionType  QuestionType `json:"question_type" binding:"required,oneof=multiple_choice true_false short_answer"`
	Options       []string     `json:"options" binding:"omitempty,dive,max=300"`
	CorrectAnswer string       `json:"correct_answer" binding:"required"`
}
