package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/dmikh/job-tracker/internal/config"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendFollowUpReminder sends a reminder that a job application is due for a
// follow-up
func (s *Sender) SendFollowUpReminder(to, username, company, jobTitle string, followUpDate time.Time) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Follow-up reminder: %s at %s", jobTitle, company)

	body := fmt.Sprintf(
		"Dear %s,\n\n", username,
	)
	body += fmt.Sprintf(
		"You planned to follow up on your application for %s at %s on %s.\n"+
			"Now is a good time to reach out and check on its status.\n",
		jobTitle, company, followUpDate.Format("2006-01-02"),
	)
	body += "\nBest regards,\nJob Tracker"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
