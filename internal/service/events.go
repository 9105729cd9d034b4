package service

import (
	"strings"
	"time"

	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
)

func (s *Service) CreateEvent(userID int64, title, description string, startsAt time.Time, remind bool) (*models.Event, error) {
	if strings.TrimSpace(title) == "" || startsAt.IsZero() {
		return nil, errs.ErrValidation
	}
	e := &models.Event{UserID: userID, Title: title, Description: description, StartsAt: startsAt, Remind: remind}
	if err := s.repo.CreateEvent(e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListEvents returns events starting within the requested window, defaulting
// to the coming 30 days.
func (s *Service) ListEvents(userID int64, from, to time.Time) ([]models.Event, error) {
	if from.IsZero() {
		from = time.Now()
	}
	if to.IsZero() {
		to = from.AddDate(0, 0, 30)
	}
	if !to.After(from) {
		return nil, errs.ErrValidation
	}
	return s.repo.ListEvents(userID, from, to)
}

func (s *Service) UpdateEvent(userID, id int64, title, description string, startsAt time.Time, remind bool) (*models.Event, error) {
	if strings.TrimSpace(title) == "" || startsAt.IsZero() {
		return nil, errs.ErrValidation
	}
	e := &models.Event{ID: id, UserID: userID, Title: title, Description: description, StartsAt: startsAt, Remind: remind}
	if err := s.repo.UpdateEvent(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) DeleteEvent(userID, id int64) error {
	return s.repo.DeleteEvent(id, userID)
}
