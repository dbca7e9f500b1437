package models

import (
	"time"

	"gorm.io/datatypes"
)

type Appliance struct {
	BaseModel
	Name         string          `gorm:"type:text;not null"                            json:"name"`
	RoomID       int             `gorm:"not null;index"                                json:"roomId"`
	Room         *Room           `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
	Model        *string         `gorm:"type:text"                                     json:"model,omitempty"`
	Brand        *string         `gorm:"type:text"                                     json:"brand,omitempty"`
	PurchaseDate *datatypes.Date `gorm:"type:date"                                     json:"purchaseDate,omitempty"`
	ReminderDate *time.Time      `gorm:"type:timestamp;index"                          json:"reminderDate,omitempty"`
	WebsiteLink  *string         `gorm:"type:text"                                     json:"websiteLink,omitempty"`
}

func (a *Appliance) ReminderDue(now time.Time) bool {
	return a.ReminderDate != nil && !a.ReminderDate.After(now)
}

type CreateApplianceRequest struct {
	Name         string          `json:"name"`
	RoomID       int             `json:"roomId"`
	Model        *string         `json:"model,omitempty"`
	Brand        *string         `json:"brand,omitempty"`
	PurchaseDate *datatypes.Date `json:"purchaseDate,omitempty"`
	ReminderDate *time.Time      `json:"reminderDate,omitempty"`
	WebsiteLink  *string         `json:"websiteLink,omitempty"`
}

type UpdateApplianceRequest struct {
	Name         string          `json:"name"`
	Model        *string         `json:"model,omitempty"`
	Brand        *string         `json:"brand,omitempty"`
	PurchaseDate *datatypes.Date `json:"purchaseDate,omitempty"`
	ReminderDate *time.Time      `json:"reminderDate,omitempty"`
	WebsiteLink  *string         `json:"websiteLink,omitempty"`
}
