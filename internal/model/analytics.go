package model

// StudentStats is the aggregate progress snapshot for one student.
type StudentStats struct {
	TotalXP               int `json:"total_xp"`
	CompletedExercises    int `json:"completed_exercises"`
	TotalExercises        int `json:"total_exercises"`
	PassedQuizzes         int `json:"passed_quizzes"`
	TotalQuizzes          int `json:"total_quizzes"`
	AverageScore          int `json:"average_score"`
	TotalTimeSpentMinutes int `json:"total_time_spent_minutes"`
}

// WeeklyGoals tracks progress against the weekly exercise target.
type WeeklyGoals struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// StudentProgress is the progress view used by dashboards.
type StudentProgress struct {
	OverallCompletion  int         `json:"overall_completion"`
	CurrentStreak      int         `json:"current_streak"`
	WeeklyGoals        WeeklyGoals `json:"weekly_goals"`
	ExercisesCompleted int         `json:"exercises_completed,omitempty"`
	QuizzesTaken       int         `json:"quizzes_taken,omitempty"`
	AverageScore       int         `json:"average_score,omitempty"`
}

// StudentSummary is one row of the teacher dashboard's roster.
type StudentSummary struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	GradeLevel         string `json:"grade_level"`
	ExercisesCompleted int    `json:"exercises_completed"`
	QuizzesPassed      int    `json:"quizzes_passed"`
	LastActive         string `json:"last_active"`
}

// TeacherQuizSummary is one row of the teacher dashboard's quiz table.
type TeacherQuizSummary struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	StudentCount   int     `json:"student_count"`
	CompletedCount int     `json:"completed_count"`
	AvgScore       float64 `json:"avg_score"`
}
