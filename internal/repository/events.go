package repository

import (
	"fmt"
	"time"

	"github.com/lifelog/lifelog-service/internal/models"
)

func (r *Repository) CreateEvent(e *models.Event) error {
	query := `
		INSERT INTO lifelog.events (user_id, title, description, starts_at, remind, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, e.UserID, e.Title, e.Description, e.StartsAt, e.Remind).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// ListEvents returns the user's events starting within [from, to).
func (r *Repository) ListEvents(userID int64, from, to time.Time) ([]models.Event, error) {
	query := `
		SELECT id, user_id, title, description, starts_at, remind, created_at, updated_at
		FROM lifelog.events
		WHERE user_id = $1 AND starts_at >= $2 AND starts_at < $3
		ORDER BY starts_at`
	rows, err := r.db.Query(query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.StartsAt, &e.Remind, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}

// UpdateEvent updates an event keyed by id AND owner.
func (r *Repository) UpdateEvent(e *models.Event) error {
	query := `
		UPDATE lifelog.events
		SET title = $1, description = $2, starts_at = $3, remind = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND user_id = $6`
	res, err := r.db.Exec(query, e.Title, e.Description, e.StartsAt, e.Remind, e.ID, e.UserID)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return checkAffected(res)
}

func (r *Repository) DeleteEvent(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM lifelog.events WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return checkAffected(res)
}

// EventReminder pairs a reminder-flagged event with its owner's address.
type EventReminder struct {
	Event    models.Event
	Email    string
	Username string
}

// ListDueReminders returns reminder-flagged events starting within [from, to)
// across all users, joined with the owning account for delivery.
func (r *Repository) ListDueReminders(from, to time.Time) ([]EventReminder, error) {
	query := `
		SELECT e.id, e.user_id, e.title, e.description, e.starts_at, e.remind, e.created_at, e.updated_at,
		       u.email, u.username
		FROM lifelog.events e
		JOIN lifelog.users u ON u.id = e.user_id
		WHERE e.remind AND e.starts_at >= $1 AND e.starts_at < $2
		ORDER BY e.starts_at`
	rows, err := r.db.Query(query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}
	defer rows.Close()

	reminders := []EventReminder{}
	for rows.Next() {
		var rem EventReminder
		e := &rem.Event
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Description, &e.StartsAt, &e.Remind,
			&e.CreatedAt, &e.UpdatedAt, &rem.Email, &rem.Username); err != nil {
			return nil, fmt.Errorf("failed to scan due reminder: %w", err)
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read due reminders: %w", err)
	}
	return reminders, nil
}
