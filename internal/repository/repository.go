package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// mapRowErr converts sql.ErrNoRows on an owner-scoped single-row query into
// errs.ErrNotFound and wraps anything else.
func mapRowErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return errs.ErrNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// CreateUser creates a new user in the database. A username or email
// collision surfaces as errs.ErrDuplicateAccount; the unique constraints do
// the duplicate detection so registration stays a single write.
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO lifelog.users (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errs.ErrDuplicateAccount
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByLogin retrieves a user by username or email with a single lookup.
func (r *Repository) FindUserByLogin(login string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM lifelog.users
		WHERE username = $1 OR email = $1`
	err := r.db.QueryRow(query, login).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// FindUserByID retrieves a user by its identifier.
func (r *Repository) FindUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM lifelog.users
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
