package model

import "time"

// Role distinguishes the two kinds of LearnFlow accounts.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether the role is one the platform knows about.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User represents a LearnFlow account. When the backend is unreachable the
// gateway reconstructs this record straight from the session token, so only
// the fields embedded in the token are guaranteed to be populated.
type User struct {
	ID         int       `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       Role      `json:"role"`
	GradeLevel string    `json:"grade_level,omitempty"` // Students only
	Department string    `json:"department,omitempty"`  // Teachers only
	Bio        string    `json:"bio,omitempty"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoginRequest is the payload for authenticating against the backend.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4,max=128"`
	Role     Role   `json:"role" binding:"required,oneof=student teacher"`
}

// RegisterRequest is the payload for creating a new account. Registration
// auto-logs-in with the same credentials on success.
type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Password   string `json:"password" binding:"required,min=4,max=128"`
	Role       Role   `json:"role" binding:"required,oneof=student teacher"`
	GradeLevel string `json:"grade_level" binding:"omitempty,max=50"`
	Department string `json:"department" binding:"omitempty,max=100"`
}

// UpdateProfileRequest is the payload for PUT /api/auth/me.
type UpdateProfileRequest struct {
	Name       string `json:"name" binding:"omitempty,min=2,max=100"`
	Bio        string `json:"bio" binding:"omitempty,max=500"`
	GradeLevel string `json:"grade_level" binding:"omitempty,max=50"`
	Department string `json:"department" binding:"omitempty,max=100"`
}

// ChangePasswordRequest is the payload for POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required,min=4,max=128"`
	NewPassword     string `json:"new_password" binding:"required,min=4,max=128"`
}

// SetSessionRequest mirrors a client-held token into the gateway's stores.
type SetSessionRequest struct {
	Token string `json:"token" binding:"required"`
}
