package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderDue(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		reminder *time.Time
		want     bool
	}{
		{name: "nil reminder", reminder: nil, want: false},
		{name: "past reminder", reminder: &past, want: true},
		{name: "reminder exactly now", reminder: &now, want: true},
		{name: "future reminder", reminder: &future, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			house := House{ReminderDate: tt.reminder}
			assert.Equal(t, tt.want, house.ReminderDue(now))

			room := Room{ReminderDate: tt.reminder}
			assert.Equal(t, tt.want, room.ReminderDue(now))

			appliance := Appliance{ReminderDate: tt.reminder}
			assert.Equal(t, tt.want, appliance.ReminderDue(now))

			part := Part{ReminderDate: tt.reminder}
			assert.Equal(t, tt.want, part.ReminderDue(now))
		})
	}
}

func TestUserToProfile(t *testing.T) {
	user := User{
		BaseModel: BaseModel{ID: 7},
		Username:  "shrek",
		Password:  "hashed-secret",
		Email:     "shrek@example.com",
	}

	profile := user.ToProfile()
	assert.Equal(t, 7, profile.ID)
	assert.Equal(t, "shrek", profile.Username)
	assert.Equal(t, "shrek@example.com", profile.Email)
}
