package services

import (
	"context"
	"testing"

	"ogrelist/config"

	"github.com/stretchr/testify/assert"
)

func TestRenderReminderBody(t *testing.T) {
	body := renderReminderBody("Reminder for house: The Swamp")

	assert.Contains(t, body, "This is a reminder for: Reminder for house: The Swamp")
	assert.Contains(t, body, "Your Ogre List Team")
	assert.NotContains(t, body, "{{reminderItem}}")
}

func TestMailerService_SendCancelledContext(t *testing.T) {
	mailer := NewMailerService(config.Config{
		SMTPHost: "localhost",
		SMTPPort: 2525,
		SMTPFrom: "reminders@example.com",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mailer.Send(ctx, "a@b.com", "House Reminder", "Reminder for house: H")
	assert.Error(t, err)
}
