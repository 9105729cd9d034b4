package repository

import (
	"fmt"

	"github.com/lifelog/lifelog-service/internal/models"
)

func (r *Repository) CreateTodo(t *models.Todo) error {
	query := `
		INSERT INTO lifelog.todos (user_id, title, done, due_date, created_at, updated_at)
		VALUES ($1, $2, false, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, t.UserID, t.Title, t.DueDate).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}
	return nil
}

func (r *Repository) ListTodos(userID int64) ([]models.Todo, error) {
	query := `
		SELECT id, user_id, title, done, due_date, created_at, updated_at
		FROM lifelog.todos
		WHERE user_id = $1
		ORDER BY done, due_date NULLS LAST, created_at`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Done, &t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read todos: %w", err)
	}
	return todos, nil
}

// UpdateTodo updates title, done flag and due date, keyed by id AND owner.
func (r *Repository) UpdateTodo(t *models.Todo) error {
	query := `
		UPDATE lifelog.todos
		SET title = $1, done = $2, due_date = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND user_id = $5`
	res, err := r.db.Exec(query, t.Title, t.Done, t.DueDate, t.ID, t.UserID)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	return checkAffected(res)
}

func (r *Repository) DeleteTodo(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM lifelog.todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return checkAffected(res)
}
