package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Name          string    `json:"name"`
	GradeLevel    *string   `json:"grade_level,omitempty"`
	Subjects      []string  `json:"subjects,omitempty"`
	LearningGoals *string   `json:"learning_goals,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type RegisterRequest struct {
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Name          string   `json:"name"`
	GradeLevel    *string  `json:"grade_level"`
	Subjects      []string `json:"subjects"`
	LearningGoals *string  `json:"learning_goals"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse pairs the safe user profile with the signed session token.
// The same token is also set as an httpOnly cookie.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
