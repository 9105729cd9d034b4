package service

import (
	"strings"
	"time"

	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
	"github.com/lifelog/lifelog-service/internal/utils"
)

// CreateWorkout logs a workout. When no calorie count is supplied the burn
// is estimated from duration and intensity.
func (s *Service) CreateWorkout(userID int64, name string, durationMinutes, calories int, intensity, performedOn string) (*models.Workout, error) {
	if strings.TrimSpace(name) == "" || durationMinutes <= 0 || !utils.ValidIntensity(intensity) || calories < 0 {
		return nil, errs.ErrValidation
	}
	if performedOn == "" {
		performedOn = time.Now().Format(dayFormat)
	} else if _, err := time.Parse(dayFormat, performedOn); err != nil {
		return nil, errs.ErrValidation
	}
	if calories == 0 {
		calories = utils.EstimateCalories(durationMinutes, intensity)
	}
	w := &models.Workout{
		UserID:          userID,
		Name:            name,
		DurationMinutes: durationMinutes,
		Intensity:       intensity,
		Calories:        calories,
		PerformedOn:     performedOn,
	}
	if err := s.repo.CreateWorkout(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) ListWorkouts(userID int64, from, to string) ([]models.Workout, error) {
	from, to, err := dayRange(from, to)
	if err != nil {
		return nil, err
	}
	return s.repo.ListWorkouts(userID, from, to)
}

func (s *Service) DeleteWorkout(userID, id int64) error {
	return s.repo.DeleteWorkout(id, userID)
}
