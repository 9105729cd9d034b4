package service

import (
	"strings"

	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
)

// CreateJournalEntry stores a new journal entry for the user.
func (s *Service) CreateJournalEntry(userID int64, title, content string) (*models.JournalEntry, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, errs.ErrValidation
	}
	entry := &models.JournalEntry{UserID: userID, Title: title, Content: content}
	if err := s.repo.CreateJournalEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) ListJournalEntries(userID int64) ([]models.JournalEntry, error) {
	return s.repo.ListJournalEntries(userID)
}

func (s *Service) UpdateJournalEntry(userID, id int64, title, content string) (*models.JournalEntry, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, errs.ErrValidation
	}
	entry := &models.JournalEntry{ID: id, UserID: userID, Title: title, Content: content}
	if err := s.repo.UpdateJournalEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) DeleteJournalEntry(userID, id int64) error {
	return s.repo.DeleteJournalEntry(id, userID)
}
