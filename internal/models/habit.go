package models

import "time"

// Habit represents a recurring habit being tracked
type Habit struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	Frequency     string    `json:"frequency"` // daily or weekly
	Streak        int       `json:"streak"`
	LastCompleted *string   `json:"last_completed,omitempty"` // Format: YYYY-MM-DD
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
