package service

import (
	"strings"

	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
)

func (s *Service) CreateNote(userID int64, title, body string, pinned bool) (*models.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errs.ErrValidation
	}
	n := &models.Note{UserID: userID, Title: title, Body: body, Pinned: pinned}
	if err := s.repo.CreateNote(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) ListNotes(userID int64) ([]models.Note, error) {
	return s.repo.ListNotes(userID)
}

func (s *Service) UpdateNote(userID, id int64, title, body string, pinned bool) (*models.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errs.ErrValidation
	}
	n := &models.Note{ID: id, UserID: userID, Title: title, Body: body, Pinned: pinned}
	if err := s.repo.UpdateNote(n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Service) DeleteNote(userID, id int64) error {
	return s.repo.DeleteNote(id, userID)
}
