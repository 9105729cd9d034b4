package service

import (
	"time"

	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
)

// QuoteOfTheDay picks the day's quote from the pool by day-of-year, so every
// request on the same calendar day sees the same quote.
func (s *Service) QuoteOfTheDay(now time.Time) (*models.Quote, error) {
	quotes, err := s.repo.ListQuotes()
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, errs.ErrNotFound
	}
	q := quotes[(now.YearDay()-1)%len(quotes)]
	return &q, nil
}
