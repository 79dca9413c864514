package scheduler

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/dmikh/job-tracker/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	reminders []*models.FollowUpReminder
	err       error
}

func (f *fakeSource) DueFollowUps(_ context.Context, _ time.Time) ([]*models.FollowUpReminder, error) {
	return f.reminders, f.err
}

type fakeSender struct {
	sent    []string
	failFor string
}

func (f *fakeSender) SendFollowUpReminder(to, _, _, _ string, _ time.Time) error {
	if to == f.failFor {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, to)
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRunOnce_SendsOneReminderPerDueFollowUp(t *testing.T) {
	t.Parallel()

	due := time.Now()
	source := &fakeSource{reminders: []*models.FollowUpReminder{
		{Email: "a@example.com", Username: "a", CompanyName: "Acme", JobTitle: "Eng", FollowUpDate: due},
		{Email: "b@example.com", Username: "b", CompanyName: "Globex", JobTitle: "SRE", FollowUpDate: due},
	}}
	sender := &fakeSender{}

	NewScheduler(source, sender, quietLogger()).RunOnce()

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, sender.sent)
}

func TestRunOnce_DeliveryFailureDoesNotAbortScan(t *testing.T) {
	t.Parallel()

	due := time.Now()
	source := &fakeSource{reminders: []*models.FollowUpReminder{
		{Email: "fail@example.com", FollowUpDate: due},
		{Email: "ok@example.com", FollowUpDate: due},
	}}
	sender := &fakeSender{failFor: "fail@example.com"}

	NewScheduler(source, sender, quietLogger()).RunOnce()

	assert.Equal(t, []string{"ok@example.com"}, sender.sent)
}

func TestRunOnce_SourceErrorSendsNothing(t *testing.T) {
	t.Parallel()

	source := &fakeSource{err: errors.New("db down")}
	sender := &fakeSender{}

	NewScheduler(source, sender, quietLogger()).RunOnce()

	assert.Empty(t, sender.sent)
}

func TestStart_RejectsBadSpec(t *testing.T) {
	t.Parallel()

	s := NewScheduler(&fakeSource{}, &fakeSender{}, quietLogger())
	assert.Error(t, s.Start("not a cron spec"))
}
