package models

import "gorm.io/gorm"

type Hobby struct {
	gorm.Model
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Name   string `gorm:"type:varchar(100);not null" json:"name"`
}
