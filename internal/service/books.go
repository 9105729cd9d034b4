package service

import (
	"strings"

	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
)

var bookStatuses = map[string]bool{
	"to-read":  true,
	"reading":  true,
	"finished": true,
}

func (s *Service) CreateBook(userID int64, title, author, status string, rating *int) (*models.Book, error) {
	if err := validateBook(title, status, rating); err != nil {
		return nil, err
	}
	b := &models.Book{UserID: userID, Title: title, Author: author, Status: status, Rating: rating}
	if err := s.repo.CreateBook(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBooks(userID int64) ([]models.Book, error) {
	return s.repo.ListBooks(userID)
}

func (s *Service) UpdateBook(userID, id int64, title, author, status string, rating *int) (*models.Book, error) {
	if err := validateBook(title, status, rating); err != nil {
		return nil, err
	}
	b := &models.Book{ID: id, UserID: userID, Title: title, Author: author, Status: status, Rating: rating}
	if err := s.repo.UpdateBook(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) DeleteBook(userID, id int64) error {
	return s.repo.DeleteBook(id, userID)
}

func validateBook(title, status string, rating *int) error {
	if strings.TrimSpace(title) == "" || !bookStatuses[status] {
		return errs.ErrValidation
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return errs.ErrValidation
	}
	return nil
}
