package models

import "time"

// MoodLog represents a single mood rating for a day
type MoodLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"` // 1-10
	Note      string    `json:"note"`
	LoggedOn  string    `json:"logged_on"` // Format: YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}
