package repository

import (
	"fmt"

	"github.com/lifelog/lifelog-service/internal/models"
)

func (r *Repository) CreateMeal(m *models.Meal) error {
	query := `
		INSERT INTO lifelog.meals (user_id, name, meal_type, calories, eaten_on, created_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, m.UserID, m.Name, m.MealType, m.Calories, m.EatenOn).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}
	return nil
}

// ListMeals returns the user's meals within [from, to] inclusive.
func (r *Repository) ListMeals(userID int64, from, to string) ([]models.Meal, error) {
	query := `
		SELECT id, user_id, name, meal_type, calories, eaten_on, created_at
		FROM lifelog.meals
		WHERE user_id = $1 AND eaten_on BETWEEN $2 AND $3
		ORDER BY eaten_on`
	rows, err := r.db.Query(query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	defer rows.Close()

	meals := []models.Meal{}
	for rows.Next() {
		var m models.Meal
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.MealType, &m.Calories, &m.EatenOn, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal: %w", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read meals: %w", err)
	}
	return meals, nil
}

func (r *Repository) DeleteMeal(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM lifelog.meals WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	return checkAffected(res)
}
