package config

import (
	"fmt"
	"log"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := SeedBadges(DB); err != nil {
		log.Fatalf("Badge seed failed: %v", err)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.HealthData{},
		&models.FoodLog{},
		&models.MoodLog{},
		&models.ScheduleEvent{},
		&models.Hobby{},
		&models.Badge{},
		&models.Alert{},
	)
}

// SeedBadges inserts the badge catalog once.
func SeedBadges(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Badge{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	badges := []models.Badge{
		{Name: "First Steps", Icon: "👟", Description: "Logged your first day of data."},
		{Name: "Active Week", Icon: "🔥", Description: "Met a 7-day activity streak."},
	}
	return db.Create(&badges).Error
}
