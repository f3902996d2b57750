package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db  *gorm.DB
	hub *RealtimeHub
}

var _alert alertDeps

func InitAlertBus(db *gorm.DB, hub *RealtimeHub) {
	_alert = alertDeps{db: db, hub: hub}
}

// EmitAlert persists an insight alert and pushes it to the user's live
// websocket connections. A same-kind alert already emitted today is
// skipped so dashboard reloads don't spam. Safe to call anywhere; a nil
// bus is a no-op.
func EmitAlert(userID uint, kind, title, message string) {
	if _alert.db == nil {
		return
	}

	var existing int64
	_alert.db.Model(&models.Alert{}).
		Where("user_id = ? AND kind = ? AND created_at >= ?", userID, kind, dayStart(time.Now())).
		Count(&existing)
	if existing > 0 {
		return
	}

	a := &models.Alert{UserID: userID, Kind: kind, Title: title, Message: message}
	if err := _alert.db.Create(a).Error; err != nil {
		return
	}

	if _alert.hub != nil {
		_alert.hub.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}

// RecentAlerts returns the user's latest persisted alerts, newest first.
func RecentAlerts(db *gorm.DB, userID uint, limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
