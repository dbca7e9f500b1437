package models

import (
	"time"
)

// BaseModel intentionally has no gorm.DeletedAt: deletes must be hard so the
// ON DELETE CASCADE constraints remove descendant rows at the store level.
type BaseModel struct {
	ID        int       `gorm:"type:int;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime"                    json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"                    json:"updatedAt"`
}
