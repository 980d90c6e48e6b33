package model

// Exercise is an interactive coding exercise. Immutable from the gateway's
// perspective; fetched by id or listed in bulk.
type Exercise struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DifficultyLevel string     `json:"difficulty_level"`
	Topic           string     `json:"topic"`
	StarterCode     string     `json:"starter_code"`
	ExpectedOutput  string     `json:"expected_output"`
	Hints           []string   `json:"hints,omitempty"`
	TestCases       []TestCase `json:"test_cases,omitempty"`
}

// TestCase pairs an input with the output a correct solution must produce.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// CreateExerciseRequest is the teacher-facing payload for a new exercise.
type CreateExerciseRequest struct {
	Title           string   `json:"title" binding:"required,min=2,max=200"`
	Description     string   `json:"description" binding:"required"`
	DifficultyLevel string   `json:"difficulty_level" binding:"required,oneof=easy medium hard beginner intermediate advanced"`
	Topic           string   `json:"topic" binding:"required,max=100"`
	StarterCode     string   `json:"starter_code" binding:"omitempty"`
	ExpectedOutput  string   `json:"expected_output" binding:"omitempty"`
	Hints           []string `json:"hints" binding:"omitempty,dive,max=300"`
}
