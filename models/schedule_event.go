package models

import "gorm.io/gorm"

// ScheduleEvent blocks out [StartHour, EndHour) of a user's day.
// Hours are fractional hours-of-day, e.g. 9.5 for 09:30.
// Events for the same user may overlap; the slot finder unions them.
type ScheduleEvent struct {
	gorm.Model
	UserID    uint    `gorm:"index;not null" json:"user_id"`
	EventName string  `gorm:"type:varchar(100);not null" json:"event_name"`
	StartHour float64 `gorm:"not null" json:"start_hour"`
	EndHour   float64 `gorm:"not null" json:"end_hour"`
}
