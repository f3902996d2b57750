package models

import (
	"time"

	"gorm.io/gorm"
)

type FoodLog struct {
	gorm.Model
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	Date            time.Time `gorm:"index;not null" json:"date"`
	MealDescription string    `gorm:"type:varchar(300);not null" json:"meal_description"`
	Calories        int       `gorm:"not null" json:"calories"`
}
