package repository

import (
	"fmt"

	"github.com/lifelog/lifelog-service/internal/models"
)

func (r *Repository) CreateBook(b *models.Book) error {
	query := `
		INSERT INTO lifelog.books (user_id, title, author, status, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, b.UserID, b.Title, b.Author, b.Status, b.Rating).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

func (r *Repository) ListBooks(userID int64) ([]models.Book, error) {
	query := `
		SELECT id, user_id, title, author, status, rating, created_at, updated_at
		FROM lifelog.books
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := []models.Book{}
	for rows.Next() {
		var b models.Book
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.Status, &b.Rating, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}
	return books, nil
}

// UpdateBook updates status and rating keyed by id AND owner.
func (r *Repository) UpdateBook(b *models.Book) error {
	query := `
		UPDATE lifelog.books
		SET title = $1, author = $2, status = $3, rating = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5 AND user_id = $6`
	res, err := r.db.Exec(query, b.Title, b.Author, b.Status, b.Rating, b.ID, b.UserID)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	return checkAffected(res)
}

func (r *Repository) DeleteBook(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM lifelog.books WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return checkAffected(res)
}
