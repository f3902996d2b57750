package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Email    string

	Age      int     `gorm:"not null"`
	Gender   string  `gorm:"not null"`
	WeightKg float64 `gorm:"not null"`
	HeightCm float64 `gorm:"not null"`
	Location string  `gorm:"default:'New York,US'"`

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time

	HealthData     []HealthData    `gorm:"constraint:OnDelete:CASCADE"`
	FoodLogs       []FoodLog       `gorm:"constraint:OnDelete:CASCADE"`
	MoodLogs       []MoodLog       `gorm:"constraint:OnDelete:CASCADE"`
	ScheduleEvents []ScheduleEvent `gorm:"constraint:OnDelete:CASCADE"`
	Hobbies        []Hobby         `gorm:"constraint:OnDelete:CASCADE"`
	Badges         []Badge         `gorm:"many2many:user_badges"`
}
