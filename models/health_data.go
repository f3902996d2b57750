package models

import (
	"time"

	"gorm.io/gorm"
)

// HealthData holds one day of logged metrics. One row per (user, date);
// re-logging a date updates the existing row.
type HealthData struct {
	gorm.Model
	UserID         uint      `gorm:"uniqueIndex:idx_health_user_date;not null" json:"user_id"`
	Date           time.Time `gorm:"uniqueIndex:idx_health_user_date;not null" json:"date"` // local midnight
	Steps          int       `gorm:"default:0" json:"steps"`
	Sleep          float64   `gorm:"default:0" json:"sleep"`
	HeartRate      int       `gorm:"default:0" json:"heart_rate"`
	CaloriesBurned int       `gorm:"default:0" json:"calories_burned"`
	WaterML        int       `json:"water_ml"`
	MoodTag        string    `json:"mood_tag,omitempty"`
}
