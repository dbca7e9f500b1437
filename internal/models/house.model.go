package models

import (
	"time"
)

type House struct {
	BaseModel
	Name         string     `gorm:"type:text;not null"                          json:"name"`
	UserID       int        `gorm:"not null;index"                              json:"userId"`
	User         *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	YearBuilt    *int       `gorm:"type:int"                                    json:"yearBuilt,omitempty"`
	Address      *string    `gorm:"type:text"                                   json:"address,omitempty"`
	ReminderDate *time.Time `gorm:"type:timestamp;index"                        json:"reminderDate,omitempty"`
	WebsiteLink  *string    `gorm:"type:text"                                   json:"websiteLink,omitempty"`
}

// ReminderDue reports whether the house has a reminder at or before now.
func (h *House) ReminderDue(now time.Time) bool {
	return h.ReminderDate != nil && !h.ReminderDate.After(now)
}

type CreateHouseRequest struct {
	Name         string     `json:"name"`
	YearBuilt    *int       `json:"yearBuilt,omitempty"`
	Address      *string    `json:"address,omitempty"`
	ReminderDate *time.Time `json:"reminderDate,omitempty"`
	WebsiteLink  *string    `json:"websiteLink,omitempty"`
}

// UpdateHouseRequest is a full replacement of the mutable fields, matching
// PUT semantics: omitted optional fields become null.
type UpdateHouseRequest = CreateHouseRequest
