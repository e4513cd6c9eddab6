package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"studybuddy-backend/internal/models"
)

// PostgresStore persists users in Postgres. Selected when DATABASE_URL is
// configured; otherwise the memory store applies.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, grade_level, subjects, learning_goals)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	user.ID = uuid.New()

	return s.pool.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name,
		user.GradeLevel, user.Subjects, user.LearningGoals,
	).Scan(&user.CreatedAt)
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.get(ctx, "email = $1", email)
}

func (s *PostgresStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.get(ctx, "id = $1", id)
}

func (s *PostgresStore) get(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password_hash, name, grade_level, subjects, learning_goals, created_at
		FROM users WHERE ` + where

	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Name,
		&user.GradeLevel, &user.Subjects, &user.LearningGoals, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
