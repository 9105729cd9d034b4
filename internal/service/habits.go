package service

import (
	"strings"
	"time"

	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
)

// CreateHabit registers a new habit. Frequency is daily or weekly.
func (s *Service) CreateHabit(userID int64, name, frequency string) (*models.Habit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.ErrValidation
	}
	if frequency != "daily" && frequency != "weekly" {
		return nil, errs.ErrValidation
	}
	h := &models.Habit{UserID: userID, Name: name, Frequency: frequency}
	if err := s.repo.CreateHabit(h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) ListHabits(userID int64) ([]models.Habit, error) {
	return s.repo.ListHabits(userID)
}

// CompleteHabit marks the habit done for today and returns the bumped streak.
func (s *Service) CompleteHabit(userID, id int64) (*models.Habit, error) {
	return s.repo.CompleteHabit(id, userID, time.Now().Format(dayFormat))
}

func (s *Service) DeleteHabit(userID, id int64) error {
	return s.repo.DeleteHabit(id, userID)
}
