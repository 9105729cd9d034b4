package repository

import (
	"fmt"

	"github.com/lifelog/lifelog-service/internal/models"
)

// ListQuotes returns the full quote pool in stable id order. Quotes are
// shared across accounts, not owned resources.
func (r *Repository) ListQuotes() ([]models.Quote, error) {
	rows, err := r.db.Query(`SELECT id, text, author FROM lifelog.quotes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	quotes := []models.Quote{}
	for rows.Next() {
		var q models.Quote
		if err := rows.Scan(&q.ID, &q.Text, &q.Author); err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read quotes: %w", err)
	}
	return quotes, nil
}
