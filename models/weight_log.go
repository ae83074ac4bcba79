package models

import (
	"time"

	"gorm.io/gorm"
)

type WeightLog struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Weight     float64   `gorm:"not null" json:"weight"` // kg
	RecordedAt time.Time `gorm:"index;not null" json:"recorded_at"`
}
