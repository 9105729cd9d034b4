package reminder

import (
	"errors"
	"testing"
	"time"

	"github.com/lifelog/lifelog-service/internal/models"
	"github.com/lifelog/lifelog-service/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	reminders []repository.EventReminder
	err       error
}

func (f *fakeStore) ListDueReminders(from, to time.Time) ([]repository.EventReminder, error) {
	return f.reminders, f.err
}

type fakeMailer struct {
	sent    []string
	failFor string
}

func (f *fakeMailer) Send(to, username string, ev models.Event) error {
	if to == f.failFor {
		return errors.New("smtp refused")
	}
	f.sent = append(f.sent, to)
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestRunSendsDueReminders(t *testing.T) {
	now := time.Now()
	store := &fakeStore{reminders: []repository.EventReminder{
		{Event: models.Event{ID: 1, Title: "dentist", StartsAt: now.Add(time.Hour)}, Email: "alice@x.com", Username: "alice"},
		{Event: models.Event{ID: 2, Title: "standup", StartsAt: now.Add(2 * time.Hour)}, Email: "bob@x.com", Username: "bob"},
	}}
	mailer := &fakeMailer{}

	NewScheduler(store, mailer, quietLogger()).Run(now, now.Add(24*time.Hour))

	assert.Equal(t, []string{"alice@x.com", "bob@x.com"}, mailer.sent)
}

func TestRunSkipsFailedDeliveries(t *testing.T) {
	now := time.Now()
	store := &fakeStore{reminders: []repository.EventReminder{
		{Event: models.Event{ID: 1, Title: "a"}, Email: "bad@x.com", Username: "a"},
		{Event: models.Event{ID: 2, Title: "b"}, Email: "ok@x.com", Username: "b"},
	}}
	mailer := &fakeMailer{failFor: "bad@x.com"}

	NewScheduler(store, mailer, quietLogger()).Run(now, now.Add(24*time.Hour))

	// one bad address must not block the rest
	assert.Equal(t, []string{"ok@x.com"}, mailer.sent)
}

func TestRunStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}
	mailer := &fakeMailer{}

	now := time.Now()
	NewScheduler(store, mailer, quietLogger()).Run(now, now.Add(24*time.Hour))

	assert.Empty(t, mailer.sent)
}
