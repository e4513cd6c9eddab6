package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"studybuddy-backend/internal/middleware"
	"studybuddy-backend/internal/models"
	"studybuddy-backend/internal/store"
)

type AuthService struct {
	users store.Users
	jwt   *middleware.JWTAuth
}

func NewAuthService(users store.Users, jwt *middleware.JWTAuth) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Register creates a new account and issues a session token.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, string, error) {
	fieldErrors := make(map[string]string)

	if req.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	if !emailRegex.MatchString(req.Email) {
		fieldErrors["email"] = "Invalid email format"
	}
	if err := validatePassword(req.Password); err != nil {
		fieldErrors["password"] = err.Error()
	}

	if len(fieldErrors) > 0 {
		return nil, "", &ValidationError{Fields: fieldErrors}
	}

	_, err := s.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, "", &ConflictError{Message: "User already exists"}
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:         req.Email,
		PasswordHash:  string(hash),
		Name:          req.Name,
		GradeLevel:    req.GradeLevel,
		Subjects:      req.Subjects,
		LearningGoals: req.LearningGoals,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", &ValidationError{Fields: map[string]string{"credentials": "Email and password are required"}}
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, "", &UnauthorizedError{Message: "Invalid credentials"}
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", &UnauthorizedError{Message: "Invalid credentials"}
	}

	token, err := s.jwt.GenerateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return user, token, nil
}

// Me resolves a session token to its user. Any failure means "no session".
func (s *AuthService) Me(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.jwt.ParseUserID(token)
	if err != nil {
		return nil, &UnauthorizedError{Message: "Invalid session"}
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, &UnauthorizedError{Message: "Invalid session"}
	}
	return user, nil
}

func validatePassword(pw string) error {
	if len(pw) < 8 {
		return fmt.Errorf("Password must be at least 8 characters")
	}
	for _, ch := range pw {
		if unicode.IsDigit(ch) {
			return nil
		}
	}
	return fmt.Errorf("Password must contain at least one number")
}

// Custom errors
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }
