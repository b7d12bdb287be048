package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"atgs/internal/shared/config"
)

type SMTPNotifier struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(cfg *config.EmailConfig) *SMTPNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPNotifier{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (s *SMTPNotifier) NotifyTicketSubmitted(ctx context.Context, recipients []string, n TicketNotification) error {
	if len(recipients) == 0 {
		return nil
	}

	subject := fmt.Sprintf("New ticket #%d: %s", n.TicketID, n.Subject)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New support ticket</h2>
			<p><strong>%s</strong> (%s) submitted a ticket to the %s department.</p>
			<p>Subject: %s</p>
		</body>
		</html>
	`, n.AuthorName, n.AuthorEmail, n.Department, n.Subject)

	plainBody := fmt.Sprintf(`
New support ticket

%s (%s) submitted a ticket to the %s department.

Subject: %s
	`, n.AuthorName, n.AuthorEmail, n.Department, n.Subject)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	return nil
}
