package service

import (
	"strings"
	"time"

	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
)

func (s *Service) CreateTodo(userID int64, title string, dueDate *time.Time) (*models.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errs.ErrValidation
	}
	t := &models.Todo{UserID: userID, Title: title, DueDate: dueDate}
	if err := s.repo.CreateTodo(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListTodos(userID int64) ([]models.Todo, error) {
	return s.repo.ListTodos(userID)
}

func (s *Service) UpdateTodo(userID, id int64, title string, done bool, dueDate *time.Time) (*models.Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errs.ErrValidation
	}
	t := &models.Todo{ID: id, UserID: userID, Title: title, Done: done, DueDate: dueDate}
	if err := s.repo.UpdateTodo(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) DeleteTodo(userID, id int64) error {
	return s.repo.DeleteTodo(id, userID)
}
