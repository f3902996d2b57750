package services

import (
	"errors"
	"fmt"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
	ai *GeminiService
}

func NewFoodService(db *gorm.DB, ai *GeminiService) *FoodService {
	return &FoodService{db: db, ai: ai}
}

// LogMeal estimates calories for a free-text meal description through
// the AI collaborator and stores the result under today's date. An
// estimate failure returns ErrAnalysisFailed and writes nothing.
func (s *FoodService) LogMeal(userID uint, description string) (*models.FoodLog, error) {
	calories, err := s.ai.EstimateCalories(description)
	if err != nil {
		return nil, err
	}

	entry := models.FoodLog{
		UserID:          userID,
		Date:            dayStart(time.Now()),
		MealDescription: description,
		Calories:        calories,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to save food log: %w", err)
	}
	return &entry, nil
}

func (s *FoodService) TodayLogs(userID uint) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := s.db.
		Where("user_id = ? AND date = ?", userID, dayStart(time.Now())).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}

func (s *FoodService) DeleteLog(userID, logID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.FoodLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type NutritionSummary struct {
	TDEE             int              `json:"tdee"`
	CaloriesConsumed int              `json:"calories_consumed"`
	CaloriesBurned   int              `json:"calories_burned"`
	NetCalories      int              `json:"net_calories"`
	FoodLogs         []models.FoodLog `json:"food_logs"`
}

// TodaySummary builds the daily energy picture: estimated expenditure,
// what was eaten, what the health log says was burned, and the balance.
func (s *FoodService) TodaySummary(user *models.User) (*NutritionSummary, error) {
	logs, err := s.TodayLogs(user.ID)
	if err != nil {
		return nil, err
	}

	consumed := 0
	for _, l := range logs {
		consumed += l.Calories
	}

	burned := 0
	var health models.HealthData
	err = s.db.Where("user_id = ? AND date = ?", user.ID, dayStart(time.Now())).First(&health).Error
	if err == nil {
		burned = health.CaloriesBurned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tdee := utils.CalculateTDEE(user.Gender, user.Age, user.WeightKg, user.HeightCm)
	return &NutritionSummary{
		TDEE:             tdee,
		CaloriesConsumed: consumed,
		CaloriesBurned:   burned,
		NetCalories:      tdee - consumed + burned,
		FoodLogs:         logs,
	}, nil
}
