package models

import (
	"time"

	"gorm.io/gorm"
)

// MoodLog records a 1-5 mood score. The service layer keeps one row per
// (user, date); readers still average duplicates defensively.
type MoodLog struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	MoodScore int       `gorm:"not null" json:"mood_score"`
}
