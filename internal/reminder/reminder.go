// Package reminder emails users about upcoming calendar events they flagged
// for a reminder.
package reminder

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/lifelog/lifelog-service/internal/config"
	"github.com/lifelog/lifelog-service/internal/models"
	"github.com/lifelog/lifelog-service/internal/repository"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Store lists reminder-flagged events due within a window.
type Store interface {
	ListDueReminders(from, to time.Time) ([]repository.EventReminder, error)
}

// Mailer delivers a single event reminder.
type Mailer interface {
	Send(to, username string, ev models.Event) error
}

// SMTPMailer sends reminder mail over SMTP.
type SMTPMailer struct {
	cfg *config.Config
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send delivers one reminder email.
func (m *SMTPMailer) Send(to, username string, ev models.Event) error {
	e := email.NewEmail()
	e.From = m.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Reminder: %s", ev.Title)

	body := fmt.Sprintf("Hi %s,\n\nYour event %q starts at %s.\n",
		username, ev.Title, ev.StartsAt.Format("2006-01-02 15:04"))
	if ev.Description != "" {
		body += "\n" + ev.Description + "\n"
	}
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", m.cfg.SMTPHost, m.cfg.SMTPPort)
	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPassword, m.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}
	return nil
}

// Scheduler runs the daily reminder sweep.
type Scheduler struct {
	store  Store
	mailer Mailer
	log    *logrus.Logger
	cron   *cron.Cron
}

func NewScheduler(store Store, mailer Mailer, log *logrus.Logger) *Scheduler {
	return &Scheduler{store: store, mailer: mailer, log: log, cron: cron.New()}
}

// Start schedules the sweep every morning at 07:00 server time.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 7 * * *", func() {
		now := time.Now()
		s.Run(now, now.Add(24*time.Hour))
	}); err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}
	s.cron.Start()
	return nil
}

// Stop halts the scheduler, waiting for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Run emails every reminder-flagged event starting within [from, to).
// Delivery failures are logged and skipped so one bad address does not block
// the rest of the sweep.
func (s *Scheduler) Run(from, to time.Time) {
	reminders, err := s.store.ListDueReminders(from, to)
	if err != nil {
		s.log.WithError(err).Error("reminder sweep failed")
		return
	}

	sent := 0
	for _, rem := range reminders {
		if err := s.mailer.Send(rem.Email, rem.Username, rem.Event); err != nil {
			s.log.WithError(err).WithField("event_id", rem.Event.ID).Warn("reminder delivery failed")
			continue
		}
		sent++
	}
	s.log.WithFields(logrus.Fields{"due": len(reminders), "sent": sent}).Info("reminder sweep finished")
}
