package models

import "time"

type Meal struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	MealType  string    `json:"meal_type"` // breakfast, lunch, dinner or snack
	Calories  int       `json:"calories"`
	EatenOn   string    `json:"eaten_on"` // Format: YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}
