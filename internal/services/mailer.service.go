package services

import (
	"context"
	"strings"

	"ogrelist/config"

	logger "github.com/Bparsons0904/goLogger"
	"gopkg.in/gomail.v2"
)

// Notifier delivers a reminder message to an address. Callers own failure
// handling; Send never retries.
type Notifier interface {
	Send(ctx context.Context, to, subject, item string) error
}

const reminderBodyTemplate = `<html lang="en">
<head>
  <title>Reminder</title>
</head>
<body>
  <p>Hello!</p>
  <p>This is a reminder for: {{reminderItem}}</p>
  <p>Thank you,</p>
  <p>Your Ogre List Team</p>
</body>
</html>`

type MailerService struct {
	dialer *gomail.Dialer
	from   string
	log    logger.Logger
}

func NewMailerService(config config.Config) *MailerService {
	log := logger.New("mailerService")

	return &MailerService{
		dialer: gomail.NewDialer(
			config.SMTPHost,
			config.SMTPPort,
			config.SMTPUser,
			config.SMTPPassword,
		),
		from: config.SMTPFrom,
		log:  log,
	}
}

func (m *MailerService) Send(ctx context.Context, to, subject, item string) error {
	log := m.log.Function("Send")

	if err := ctx.Err(); err != nil {
		return log.Err("send cancelled", err, "to", to)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", renderReminderBody(item))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return log.Err("failed to send reminder email", err, "to", to, "subject", subject)
	}

	log.Info("Reminder email sent", "to", to, "subject", subject)
	return nil
}

func renderReminderBody(item string) string {
	return strings.ReplaceAll(reminderBodyTemplate, "{{reminderItem}}", item)
}
