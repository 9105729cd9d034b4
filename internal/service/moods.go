package service

import (
	"time"

	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
)

const dayFormat = "2006-01-02"

// CreateMoodLog records a mood rating. The logged day defaults to today.
func (s *Service) CreateMoodLog(userID int64, rating int, note, loggedOn string) (*models.MoodLog, error) {
	if rating < 1 || rating > 10 {
		return nil, errs.ErrValidation
	}
	if loggedOn == "" {
		loggedOn = time.Now().Format(dayFormat)
	} else if _, err := time.Parse(dayFormat, loggedOn); err != nil {
		return nil, errs.ErrValidation
	}
	m := &models.MoodLog{UserID: userID, Rating: rating, Note: note, LoggedOn: loggedOn}
	if err := s.repo.CreateMoodLog(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ListMoodLogs returns mood logs for the requested day range, defaulting to
// the last 30 days.
func (s *Service) ListMoodLogs(userID int64, from, to string) ([]models.MoodLog, error) {
	from, to, err := dayRange(from, to)
	if err != nil {
		return nil, err
	}
	return s.repo.ListMoodLogs(userID, from, to)
}

func (s *Service) DeleteMoodLog(userID, id int64) error {
	return s.repo.DeleteMoodLog(id, userID)
}

// dayRange validates an inclusive day range, defaulting to the last 30 days
// when both ends are empty.
func dayRange(from, to string) (string, string, error) {
	now := time.Now()
	if to == "" {
		to = now.Format(dayFormat)
	}
	if from == "" {
		from = now.AddDate(0, 0, -30).Format(dayFormat)
	}
	for _, day := range []string{from, to} {
		if _, err := time.Parse(dayFormat, day); err != nil {
			return "", "", errs.ErrValidation
		}
	}
	if from > to {
		return "", "", errs.ErrValidation
	}
	return from, to, nil
}
