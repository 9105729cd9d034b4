package service

import (
	"strings"
	"time"

	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
)

var mealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

func (s *Service) CreateMeal(userID int64, name, mealType string, calories int, eatenOn string) (*models.Meal, error) {
	if strings.TrimSpace(name) == "" || !mealTypes[mealType] || calories < 0 {
		return nil, errs.ErrValidation
	}
	if eatenOn == "" {
		eatenOn = time.Now().Format(dayFormat)
	} else if _, err := time.Parse(dayFormat, eatenOn); err != nil {
		return nil, errs.ErrValidation
	}
	m := &models.Meal{UserID: userID, Name: name, MealType: mealType, Calories: calories, EatenOn: eatenOn}
	if err := s.repo.CreateMeal(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) ListMeals(userID int64, from, to string) ([]models.Meal, error) {
	from, to, err := dayRange(from, to)
	if err != nil {
		return nil, err
	}
	return s.repo.ListMeals(userID, from, to)
}

func (s *Service) DeleteMeal(userID, id int64) error {
	return s.repo.DeleteMeal(id, userID)
}
