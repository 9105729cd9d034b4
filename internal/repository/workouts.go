package repository

import (
	"fmt"

	"github.com/lifelog/lifelog-service/internal/models"
)

func (r *Repository) CreateWorkout(w *models.Workout) error {
	query := `
		INSERT INTO lifelog.workouts (user_id, name, duration_minutes, intensity, calories, performed_on, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, w.UserID, w.Name, w.DurationMinutes, w.Intensity, w.Calories, w.PerformedOn).
		Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	return nil
}

// ListWorkouts returns the user's workouts within [from, to] inclusive.
func (r *Repository) ListWorkouts(userID int64, from, to string) ([]models.Workout, error) {
	query := `
		SELECT id, user_id, name, duration_minutes, intensity, calories, performed_on, created_at
		FROM lifelog.workouts
		WHERE user_id = $1 AND performed_on BETWEEN $2 AND $3
		ORDER BY performed_on`
	rows, err := r.db.Query(query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer rows.Close()

	workouts := []models.Workout{}
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.DurationMinutes, &w.Intensity, &w.Calories, &w.PerformedOn, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workouts: %w", err)
	}
	return workouts, nil
}

func (r *Repository) DeleteWorkout(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM lifelog.workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	return checkAffected(res)
}
