package repository

import (
	"fmt"

	"github.com/lifelog/lifelog-service/internal/models"
)

// CreateMoodLog inserts a mood log for its owning user.
func (r *Repository) CreateMoodLog(m *models.MoodLog) error {
	query := `
		INSERT INTO lifelog.mood_logs (user_id, rating, note, logged_on, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, m.UserID, m.Rating, m.Note, m.LoggedOn).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create mood log: %w", err)
	}
	return nil
}

// ListMoodLogs returns the user's mood logs within [from, to] inclusive,
// oldest first, for client-side range aggregation.
func (r *Repository) ListMoodLogs(userID int64, from, to string) ([]models.MoodLog, error) {
	query := `
		SELECT id, user_id, rating, note, logged_on, created_at
		FROM lifelog.mood_logs
		WHERE user_id = $1 AND logged_on BETWEEN $2 AND $3
		ORDER BY logged_on`
	rows, err := r.db.Query(query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list mood logs: %w", err)
	}
	defer rows.Close()

	logs := []models.MoodLog{}
	for rows.Next() {
		var m models.MoodLog
		if err := rows.Scan(&m.ID, &m.UserID, &m.Rating, &m.Note, &m.LoggedOn, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mood log: %w", err)
		}
		logs = append(logs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mood logs: %w", err)
	}
	return logs, nil
}

// DeleteMoodLog deletes a mood log keyed by id AND owner.
func (r *Repository) DeleteMoodLog(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM lifelog.mood_logs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete mood log: %w", err)
	}
	return checkAffected(res)
}
