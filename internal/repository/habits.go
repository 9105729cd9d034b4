package repository

import (
	"fmt"

	"github.com/lifelog/lifelog-service/internal/models"
)

// CreateHabit inserts a habit for its owning user.
func (r *Repository) CreateHabit(h *models.Habit) error {
	query := `
		INSERT INTO lifelog.habits (user_id, name, frequency, streak, created_at, updated_at)
		VALUES ($1, $2, $3, 0, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, h.UserID, h.Name, h.Frequency).
		Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}
	return nil
}

// ListHabits returns all habits owned by the user.
func (r *Repository) ListHabits(userID int64) ([]models.Habit, error) {
	query := `
		SELECT id, user_id, name, frequency, streak, last_completed, created_at, updated_at
		FROM lifelog.habits
		WHERE user_id = $1
		ORDER BY created_at`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Frequency, &h.Streak, &h.LastCompleted, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}
	return habits, nil
}

// CompleteHabit marks a habit completed for the given day and bumps the
// streak, keyed by id AND owner.
func (r *Repository) CompleteHabit(id, userID int64, day string) (*models.Habit, error) {
	h := &models.Habit{ID: id, UserID: userID}
	query := `
		UPDATE lifelog.habits
		SET streak = streak + 1, last_completed = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND user_id = $3
		RETURNING name, frequency, streak, last_completed, created_at, updated_at`
	err := r.db.QueryRow(query, day, id, userID).
		Scan(&h.Name, &h.Frequency, &h.Streak, &h.LastCompleted, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, mapRowErr(err, "failed to complete habit")
	}
	return h, nil
}

// DeleteHabit deletes a habit keyed by id AND owner.
func (r *Repository) DeleteHabit(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM lifelog.habits WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return checkAffected(res)
}
