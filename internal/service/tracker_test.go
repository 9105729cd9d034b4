package service

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quoteStore struct {
	Store
	quotes []models.Quote
}

func (q *quoteStore) ListQuotes() ([]models.Quote, error) { return q.quotes, nil }

func TestQuoteOfTheDayDeterministic(t *testing.T) {
	store := &quoteStore{quotes: []models.Quote{
		{ID: 1, Text: "one"},
		{ID: 2, Text: "two"},
		{ID: 3, Text: "three"},
	}}
	svc := newTestService(store)

	day := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC) // YearDay 1
	q, err := svc.QuoteOfTheDay(day)
	require.NoError(t, err)
	assert.Equal(t, "one", q.Text)

	// same day, later hour: same quote
	later := day.Add(10 * time.Hour)
	q2, err := svc.QuoteOfTheDay(later)
	require.NoError(t, err)
	assert.Equal(t, q.Text, q2.Text)

	// next day rotates
	next, err := svc.QuoteOfTheDay(day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "two", next.Text)

	// wraps around the pool
	wrapped, err := svc.QuoteOfTheDay(day.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, "one", wrapped.Text)
}

func TestQuoteOfTheDayEmptyPool(t *testing.T) {
	svc := newTestService(&quoteStore{})
	_, err := svc.QuoteOfTheDay(time.Now())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

type workoutStore struct {
	Store
	created *models.Workout
}

func (w *workoutStore) CreateWorkout(workout *models.Workout) error {
	workout.ID = 1
	cpy := *workout
	w.created = &cpy
	return nil
}

func TestCreateWorkoutEstimatesCalories(t *testing.T) {
	store := &workoutStore{}
	svc := newTestService(store)

	w, err := svc.CreateWorkout(1, "run", 30, 0, "moderate", "2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, 210, w.Calories) // 30 min * 7 kcal/min

	// explicit calories win over the estimate
	w, err = svc.CreateWorkout(1, "run", 30, 333, "moderate", "2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, 333, w.Calories)
}

func TestCreateWorkoutValidation(t *testing.T) {
	svc := newTestService(&workoutStore{})

	_, err := svc.CreateWorkout(1, "", 30, 0, "moderate", "")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.CreateWorkout(1, "run", 0, 0, "moderate", "")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.CreateWorkout(1, "run", 30, 0, "extreme", "")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.CreateWorkout(1, "run", 30, 0, "moderate", "02/01/2026")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestDayRange(t *testing.T) {
	from, to, err := dayRange("2026-01-01", "2026-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", from)
	assert.Equal(t, "2026-01-31", to)

	// defaults cover the trailing 30 days
	from, to, err = dayRange("", "")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(dayFormat), to)
	assert.Equal(t, time.Now().AddDate(0, 0, -30).Format(dayFormat), from)

	_, _, err = dayRange("2026-02-01", "2026-01-01")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, _, err = dayRange("01-01-2026", "")
	assert.ErrorIs(t, err, errs.ErrValidation)
}

type journalStore struct {
	Store
	entries []models.JournalEntry
}

func (j *journalStore) ListJournalEntries(userID int64) ([]models.JournalEntry, error) {
	return j.entries, nil
}

func TestExportJournalXML(t *testing.T) {
	now := time.Date(2026, 4, 5, 12, 0, 0, 0, time.UTC)
	store := &journalStore{entries: []models.JournalEntry{
		{ID: 1, UserID: 7, Title: "day one", Content: "started <tracking>", CreatedAt: now, UpdatedAt: now},
		{ID: 2, UserID: 7, Title: "day two", Content: "kept going", CreatedAt: now, UpdatedAt: now},
	}}
	svc := newTestService(store)

	out, err := svc.ExportJournalXML(7)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("journal")
	require.NotNil(t, root)
	assert.Equal(t, "2", root.SelectAttrValue("entries", ""))

	entries := root.SelectElements("entry")
	require.Len(t, entries, 2)
	assert.Equal(t, "day one", entries[0].SelectElement("title").Text())
	// markup in content survives the round trip
	assert.Equal(t, "started <tracking>", entries[0].SelectElement("content").Text())
}

type moodStore struct {
	Store
	created *models.MoodLog
}

func (m *moodStore) CreateMoodLog(log *models.MoodLog) error {
	log.ID = 1
	cpy := *log
	m.created = &cpy
	return nil
}

func TestCreateMoodLogDefaultsToToday(t *testing.T) {
	store := &moodStore{}
	svc := newTestService(store)

	m, err := svc.CreateMoodLog(1, 8, "good day", "")
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(dayFormat), m.LoggedOn)

	_, err = svc.CreateMoodLog(1, 0, "", "")
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.CreateMoodLog(1, 11, "", "")
	assert.ErrorIs(t, err, errs.ErrValidation)
}
