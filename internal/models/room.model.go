package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Room struct {
	BaseModel
	Name          string           `gorm:"type:text;not null"                             json:"name"`
	HouseID       int              `gorm:"not null;index"                                 json:"houseId"`
	House         *House           `gorm:"foreignKey:HouseID;constraint:OnDelete:CASCADE" json:"-"`
	Description   *string          `gorm:"type:text"                                      json:"description,omitempty"`
	SquareFootage *decimal.Decimal `gorm:"type:decimal(10,2)"                             json:"squareFootage,omitempty"`
	ReminderDate  *time.Time       `gorm:"type:timestamp;index"                           json:"reminderDate,omitempty"`
	WebsiteLink   *string          `gorm:"type:text"                                      json:"websiteLink,omitempty"`
}

func (r *Room) ReminderDue(now time.Time) bool {
	return r.ReminderDate != nil && !r.ReminderDate.After(now)
}

type CreateRoomRequest struct {
	Name          string           `json:"name"`
	HouseID       int              `json:"houseId"`
	Description   *string          `json:"description,omitempty"`
	SquareFootage *decimal.Decimal `json:"squareFootage,omitempty"`
	ReminderDate  *time.Time       `json:"reminderDate,omitempty"`
	WebsiteLink   *string          `json:"websiteLink,omitempty"`
}

type UpdateRoomRequest struct {
	Name          string           `json:"name"`
	Description   *string          `json:"description,omitempty"`
	SquareFootage *decimal.Decimal `json:"squareFootage,omitempty"`
	ReminderDate  *time.Time       `json:"reminderDate,omitempty"`
	WebsiteLink   *string          `json:"websiteLink,omitempty"`
}
