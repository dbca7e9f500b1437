package models

import (
	"time"
)

type Part struct {
	BaseModel
	Name         string     `gorm:"type:text;not null"                                 json:"name"`
	ApplianceID  int        `gorm:"not null;index"                                     json:"applianceId"`
	Appliance    *Appliance `gorm:"foreignKey:ApplianceID;constraint:OnDelete:CASCADE" json:"-"`
	ReminderDate *time.Time `gorm:"type:timestamp;index"                               json:"reminderDate,omitempty"`
	WebsiteLink  *string    `gorm:"type:text"                                          json:"websiteLink,omitempty"`
}

func (p *Part) ReminderDue(now time.Time) bool {
	return p.ReminderDate != nil && !p.ReminderDate.After(now)
}

type CreatePartRequest struct {
	Name         string     `json:"name"`
	ApplianceID  int        `json:"applianceId"`
	ReminderDate *time.Time `json:"reminderDate,omitempty"`
	WebsiteLink  *string    `json:"websiteLink,omitempty"`
}

type UpdatePartRequest struct {
	Name         string     `json:"name"`
	ReminderDate *time.Time `json:"reminderDate,omitempty"`
	WebsiteLink  *string    `json:"websiteLink,omitempty"`
}
