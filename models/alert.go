package models

import "time"

// Alert is a persisted insight notification, also pushed to connected
// websocket clients at creation time.
type Alert struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"index" json:"user_id"`
	Kind      string `gorm:"size:30" json:"kind"` // "burnout" | "stress"
	Title     string `gorm:"size:100" json:"title"`
	Message   string `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
