package repository

import (
	"fmt"

	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
)

// CreateJournalEntry inserts a journal entry for its owning user.
func (r *Repository) CreateJournalEntry(entry *models.JournalEntry) error {
	query := `
		INSERT INTO lifelog.journal_entries (user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, entry.UserID, entry.Title, entry.Content).
		Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create journal entry: %w", err)
	}
	return nil
}

// ListJournalEntries returns all journal entries owned by the user, newest first.
func (r *Repository) ListJournalEntries(userID int64) ([]models.JournalEntry, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM lifelog.journal_entries
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal entries: %w", err)
	}
	return entries, nil
}

// UpdateJournalEntry updates an entry keyed by id AND owner; a row owned by
// another user is indistinguishable from a missing one.
func (r *Repository) UpdateJournalEntry(entry *models.JournalEntry) error {
	query := `
		UPDATE lifelog.journal_entries
		SET title = $1, content = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND user_id = $4`
	res, err := r.db.Exec(query, entry.Title, entry.Content, entry.ID, entry.UserID)
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", err)
	}
	return checkAffected(res)
}

// DeleteJournalEntry deletes an entry keyed by id AND owner.
func (r *Repository) DeleteJournalEntry(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM lifelog.journal_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	return checkAffected(res)
}

type affecter interface {
	RowsAffected() (int64, error)
}

func checkAffected(res affecter) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
