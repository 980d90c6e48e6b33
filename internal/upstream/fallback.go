package upstream

import (
	"time"

	"github.com/learnflow/gateway/internal/model"
)

// Fallback fixtures. These are the values every accessor substitutes when
// the backend is unreachable. They are deterministic on purpose: demos and
// tests rely on the exact ids, titles and ordering below.

// FallbackStats returns the per-student stats fixture. Students 1-3 have
// distinct numbers for a personalized feel; anyone else gets student 1's.
func FallbackStats(studentID int) model.StudentStats {
	stats := map[int]model.StudentStats{
		1: {
			TotalXP:               1250,
			CompletedExercises:    12,
			TotalExercises:        20,
			PassedQuizzes:         3,
			TotalQuizzes:          5,
			AverageScore:          85,
			TotalTimeSpentMinutes: 320,
		},
		2: {
			TotalXP:               850,
			CompletedExercises:    8,
			TotalExercises:        20,
			PassedQuizzes:         1,
			TotalQuizzes:          5,
			AverageScore:          72,
			TotalTimeSpentMinutes: 180,
		},
		3: {
			TotalXP:               1850,
			CompletedExercises:    18,
			TotalExercises:        20,
			PassedQuizzes:         4,
			TotalQuizzes:          5,
			AverageScore:          92,
			TotalTimeSpentMinutes: 450,
		},
	}

	if s, ok := stats[studentID]; ok {
		return s
	}
	return stats[1]
}

// FallbackProgress returns the dashboard progress fixture.
func FallbackProgress() model.StudentProgress {
	return model.StudentProgress{
		OverallCompletion: 60,
		CurrentStreak:     5,
		WeeklyGoals:       model.WeeklyGoals{Completed: 4, Total: 7},
	}
}

// FallbackStudentProgress is the teacher-facing variant with extra fields.
func FallbackStudentProgress() model.StudentProgress {
	return model.StudentProgress{
		OverallCompletion:  60,
		CurrentStreak:      5,
		WeeklyGoals:        model.WeeklyGoals{Completed: 4, Total: 7},
		ExercisesCompleted: 12,
		QuizzesTaken:       3,
		AverageScore:       85,
	}
}

// FallbackExercises returns the exercise list fixture.
func FallbackExercises() []model.Exercise {
	return []model.Exercise{
		{
			ID:              1,
			Title:           "Hello, World!",
			Description:     "Write a Python program that prints 'Hello, World!' to the console.",
			DifficultyLevel: "easy",
			Topic:           "Introduction to Python",
			StarterCode:     "# Write your first Python program\n# Print a greeting message\nprint('Hello, World!')",
			ExpectedOutput:  "Hello, World!",
		},
		{
			ID:              2,
			Title:           "Create and Print Variables",
			Description:     "Create variables for name, age, and city, then print them.",
			DifficultyLevel: "easy",
			Topic:           "Variables and Data Types",
			StarterCode:     "# Create variables\nname = 'John'\nage = 25\ncity = 'New York'\n\n# Print variables\n",
			ExpectedOutput:  "Name: John, Age: 25, City: New York",
		},
		{
			ID:              3,
			Title:           "Simple Calculator",
			Description:     "Create a calculator that adds two numbers.",
			DifficultyLevel: "easy",
			Topic:           "Operators and Expressions",
			StarterCode:     "# Read two numbers\nnum1 = 10\nnum2 = 5\n\n# Add them\n",
			ExpectedOutput:  "Sum: 15.0",
		},
	}
}

// FallbackExercise returns the detail fixture for one exercise. The first
// three ids stay consistent with FallbackExercises; any other id gets a
// generic sample exercise carrying that id.
func FallbackExercise(id int) model.Exercise {
	switch id {
	case 1:
		return model.Exercise{
			ID:              1,
			Title:           "Hello, World!",
			Description:     "Write a Python program that prints 'Hello, World!' to the console. This is your first Python program and introduces you to basic syntax.",
			DifficultyLevel: "beginner",
			Topic:           "Introduction to Python",
			StarterCode:     "# Write your first Python program\n# Print a greeting message\nprint('Hello, World!')",
			ExpectedOutput:  "Hello, World!",
			Hints: []string{
				"Use the print() function to display output",
				"Remember to use quotes for string literals",
				"Python uses indentation for code blocks",
			},
		}
	case 2:
		return model.Exercise{
			ID:              2,
			Title:           "Variables and Data Types",
			Description:     "Create variables for name, age, and city, then print them. Learn about different data types in Python.",
			DifficultyLevel: "beginner",
			Topic:           "Variables and Data Types",
			StarterCode:     "# Create variables\nname = 'John'\nage = 25\ncity = 'New York'\n\n# Print variables\nprint(f'Name: {name}, Age: {age}, City: {city}')",
			ExpectedOutput:  "Name: John, Age: 25, City: New York",
			Hints: []string{
				"Use meaningful variable names",
				"F-strings allow embedding variables in strings",
				"Different data types: str, int, float, bool",
			},
		}
	case 3:
		return model.Exercise{
			ID:              3,
			Title:           "Simple Calculator",
			Description:     "Create a calculator that adds two numbers. Learn about user input and basic arithmetic operations.",
			DifficultyLevel: "beginner",
			Topic:           "Operators and Expressions",
			StarterCode:     "# Read two numbers\nnum1 = float(input('Enter first number: '))\nnum2 = float(input('Enter second number: '))\n\n# Add them\nresult = num1 + num2\nprint(f'Sum: {result}')",
			ExpectedOutput:  "Sum: 15.0",
			Hints: []string{
				"Use input() to get user input",
				"Convert string input to number with int() or float()",
				"Use the + operator for addition",
			},
		}
	default:
		return model.Exercise{
			ID:              id,
			Title:           "Sample Exercise",
			Description:     "This is a sample exercise for demonstration purposes. The backend may not be running or properly configured.",
			DifficultyLevel: "easy",
			Topic:           "Python Basics",
			StarterCode:     "# Write your Python code here\n\nprint('Hello LearnFlow!')\n# Try different Python concepts\n# like variables, loops, or functions",
			ExpectedOutput:  "Hello LearnFlow!",
			Hints: []string{
				"Remember to use proper Python syntax",
				"Use the print() function to display output",
				"Check for proper indentation",
				"Refer to Python documentation for help",
			},
		}
	}
}

// FallbackLevels returns the difficulty tier fixture.
func FallbackLevels() []model.Level {
	return []model.Level{
		{ID: 1, Name: "Beginner", Description: "Start your Python journey with fundamentals", Order: 1},
		{ID: 2, Name: "Intermediate", Description: "Build more complex applications", Order: 2},
		{ID: 3, Name: "Advanced", Description: "Master advanced Python concepts", Order: 3},
		{ID: 4, Name: "Expert", Description: "Become a Python expert", Order: 4},
	}
}

// FallbackTopics returns the curriculum topic fixture.
func FallbackTopics() []model.Topic {
	return []model.Topic{
		{ID: 1, Name: "Introduction to Python", Description: "Learn what Python is and set up your environment", LevelID: 1},
		{ID: 2, Name: "Variables and Data Types", Description: "Master variables, strings, numbers, and boolean types", LevelID: 1},
		{ID: 3, Name: "Operators and Expressions", Description: "Learn arithmetic, comparison, logical, and assignment operators", LevelID: 1},
		{ID: 4, Name: "Control Flow - If Statements", Description: "Make decisions with if, elif, and else statements", LevelID: 1},
		{ID: 5, Name: "Loops - For and While", Description: "Repeat code with for and while loops", LevelID: 1},
	}
}

// FallbackQuizzes returns the two-element quiz fixture (ids 1 and 2).
func FallbackQuizzes() []model.Quiz {
	return []model.Quiz{
		{
			ID:          1,
			Title:       "Python Basics Quiz",
			Description: "Test your knowledge of Python fundamentals",
			Questions: []model.QuizQuestion{
				{
					ID:            1,
					QuestionText:  "What is the output of print(5 + 3)?",
					QuestionType:  model.QuestionMultipleChoice,
					Options:       []string{"8", "5", "3", "Error"},
					CorrectAnswer: "8",
				},
				{
					ID:            2,
					QuestionText:  "Which of the following is a valid variable name in Python?",
					QuestionType:  model.QuestionMultipleChoice,
					Options:       []string{"2var", "var_name", "var-name", "var name"},
					CorrectAnswer: "var_name",
				},
			},
		},
		{
			ID:          2,
			Title:       "Variables and Data Types Quiz",
			Description: "Test your knowledge of Python variables and types",
			Questions: []model.QuizQuestion{
				{
					ID:            1,
					QuestionText:  "What is the data type of x = 5?",
					QuestionType:  model.QuestionMultipleChoice,
					Options:       []string{"int", "float", "str", "bool"},
					CorrectAnswer: "int",
				},
			},
		},
	}
}

// FallbackChatSession returns a session stub echoing the request parameters.
func FallbackChatSession(studentID int, topic, agentType string) model.ChatSession {
	if topic == "" {
		topic = "general"
	}
	return model.ChatSession{
		ID:        1,
		StudentID: studentID,
		Topic:     topic,
		AgentType: agentType,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

// FallbackChatMessages returns the assistant greeting fixture.
func FallbackChatMessages(sessionID int) []model.ChatMessage {
	return []model.ChatMessage{
		{
			ID:        1,
			SessionID: sessionID,
			Role:      model.MessageRoleAssistant,
			Content:   "Hello! I'm your LearnFlow AI Assistant. How can I help you with your studies today?",
			CreatedAt: time.Now().UTC(),
		},
	}
}

// FallbackSentMessage echoes the user's message back as if it was stored.
// The millisecond id mimics a backend-assigned one without collisions across
// quick successive sends.
func FallbackSentMessage(sessionID int, content string) model.ChatMessage {
	return model.ChatMessage{
		ID:        int(time.Now().UnixMilli()),
		SessionID: sessionID,
		Role:      model.MessageRoleUser,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// FallbackStartedSubmission returns an open submission stub.
func FallbackStartedSubmission(quizID, studentID int) model.QuizSubmission {
	return model.QuizSubmission{
		ID:        1,
		StudentID: studentID,
		QuizID:    quizID,
		StartedAt: time.Now().UTC(),
	}
}

// FallbackSubmittedAnswer returns an answer record stub. The mock never
// grades, so the answer is marked incorrect with zero points.
func FallbackSubmittedAnswer(submissionID, questionID int, answer string) model.SubmissionAnswer {
	return model.SubmissionAnswer{
		ID:           int(time.Now().UnixMilli()),
		SubmissionID: submissionID,
		QuestionID:   questionID,
		AnswerText:   answer,
		IsCorrect:    false,
		PointsEarned: 0,
	}
}

// FallbackCompletedSubmission returns a completed submission with the fixed
// demo score.
func FallbackCompletedSubmission(quizID, submissionID int) model.QuizSubmission {
	now := time.Now().UTC()
	score := 85.0
	passed := true
	return model.QuizSubmission{
		ID:          submissionID,
		StudentID:   1,
		QuizID:      quizID,
		StartedAt:   now,
		CompletedAt: &now,
		Score:       &score,
		Passed:      &passed,
	}
}

// FallbackStudents returns the teacher dashboard roster fixture.
func FallbackStudents() []model.StudentSummary {
	return []model.StudentSummary{
		{ID: 1, Name: "Alice Johnson", Email: "alice@example.com", GradeLevel: "Grade 12", ExercisesCompleted: 15, QuizzesPassed: 3, LastActive: "2 hours ago"},
		{ID: 2, Name: "Bob Smith", Email: "bob@example.com", GradeLevel: "Grade 11", ExercisesCompleted: 8, QuizzesPassed: 1, LastActive: "1 day ago"},
		{ID: 3, Name: "Carol Davis", Email: "carol@example.com", GradeLevel: "Grade 12", ExercisesCompleted: 22, QuizzesPassed: 5, LastActive: "30 mins ago"},
		{ID: 4, Name: "David Wilson", Email: "david@example.com", GradeLevel: "Grade 10", ExercisesCompleted: 5, QuizzesPassed: 0, LastActive: "2 days ago"},
	}
}

// FallbackTeacherQuizzes returns the teacher dashboard quiz table fixture.
func FallbackTeacherQuizzes() []model.TeacherQuizSummary {
	return []model.TeacherQuizSummary{
		{ID: 1, Title: "Python Basics Quiz", StudentCount: 24, CompletedCount: 18, AvgScore: 78},
		{ID: 2, Title: "Variables and Types", StudentCount: 24, CompletedCount: 15, AvgScore: 82},
		{ID: 3, Title: "Control Flow", StudentCount: 24, CompletedCount: 12, AvgScore: 75},
	}
}
