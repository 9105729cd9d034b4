package models

import "time"

// Workout represents a logged workout session
type Workout struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	Intensity       string    `json:"intensity"` // light, moderate or vigorous
	Calories        int       `json:"calories"`
	PerformedOn     string    `json:"performed_on"` // Format: YYYY-MM-DD
	CreatedAt       time.Time `json:"created_at"`
}
