package repository

import (
	"fmt"

	"github.com/lifelog/lifelog-service/internal/models"
)

func (r *Repository) CreateNote(n *models.Note) error {
	query := `
		INSERT INTO lifelog.notes (user_id, title, body, pinned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, n.UserID, n.Title, n.Body, n.Pinned).
		Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

// ListNotes returns all notes owned by the user, pinned first.
func (r *Repository) ListNotes(userID int64) ([]models.Note, error) {
	query := `
		SELECT id, user_id, title, body, pinned, created_at, updated_at
		FROM lifelog.notes
		WHERE user_id = $1
		ORDER BY pinned DESC, updated_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Pinned, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}
	return notes, nil
}

func (r *Repository) UpdateNote(n *models.Note) error {
	query := `
		UPDATE lifelog.notes
		SET title = $1, body = $2, pinned = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND user_id = $5`
	res, err := r.db.Exec(query, n.Title, n.Body, n.Pinned, n.ID, n.UserID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return checkAffected(res)
}

func (r *Repository) DeleteNote(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM lifelog.notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return checkAffected(res)
}
