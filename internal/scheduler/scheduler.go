// Package scheduler runs the daily follow-up reminder job.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/dmikh/job-tracker/internal/models"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// FollowUpSource yields the follow-ups due on a given day
type FollowUpSource interface {
	DueFollowUps(ctx context.Context, day time.Time) ([]*models.FollowUpReminder, error)
}

// ReminderSender delivers one follow-up reminder
type ReminderSender interface {
	SendFollowUpReminder(to, username, company, jobTitle string, followUpDate time.Time) error
}

// Scheduler triggers reminder delivery on a cron spec
type Scheduler struct {
	source FollowUpSource
	sender ReminderSender
	cron   *cron.Cron
	log    *logrus.Logger
}

// NewScheduler initializes a new scheduler
func NewScheduler(source FollowUpSource, sender ReminderSender, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		source: source,
		sender: sender,
		cron:   cron.New(),
		log:    log,
	}
}

// Start registers the reminder job under the given cron spec and starts the
// cron loop in its own goroutine
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}
	s.cron.Start()
	s.log.Infof("Reminder scheduler started with spec %q", spec)
	return nil
}

// Stop stops the cron loop and waits for a running job to finish
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce scans today's due follow-ups and mails a reminder for each.
// Delivery failures are logged and skipped; the scan never aborts.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	reminders, err := s.source.DueFollowUps(ctx, time.Now())
	if err != nil {
		s.log.Errorf("Failed to find due follow-ups: %v", err)
		return
	}

	sent := 0
	for _, rem := range reminders {
		if err := s.sender.SendFollowUpReminder(rem.Email, rem.Username, rem.CompanyName, rem.JobTitle, rem.FollowUpDate); err != nil {
			s.log.Errorf("Failed to send follow-up reminder to %s: %v", rem.Email, err)
			continue
		}
		sent++
	}

	if len(reminders) > 0 {
		s.log.Infof("Follow-up reminders: %d due, %d sent", len(reminders), sent)
	}
}
