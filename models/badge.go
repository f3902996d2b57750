package models

import "gorm.io/gorm"

// Badge is a catalog entry; users earn badges through the many2many
// user_badges table on models.User.
type Badge struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Icon        string `gorm:"type:varchar(10);not null" json:"icon"`
	Description string `gorm:"type:varchar(200);not null" json:"description"`
}
