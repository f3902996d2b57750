package services

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

var ErrDayAlreadyLogged = errors.New("health data for that date already exists")

type HealthService struct{ db *gorm.DB }

func NewHealthService(db *gorm.DB) *HealthService { return &HealthService{db: db} }

type HealthInput struct {
	Date           time.Time
	Steps          int
	Sleep          float64
	HeartRate      int
	CaloriesBurned int
	WaterML        int
	MoodTag        string
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// UpsertDay creates or updates the single (user, date) record. The
// read-modify-write runs inside one transaction so concurrent re-logs of
// the same day cannot lose updates; the first day ever logged also awards
// the starter badge atomically.
func (s *HealthService) UpsertDay(userID uint, in HealthInput) (*models.HealthData, error) {
	if in.Steps < 0 || in.Sleep < 0 || in.HeartRate < 0 || in.CaloriesBurned < 0 || in.WaterML < 0 {
		return nil, errors.New("metric values must not be negative")
	}

	record := models.HealthData{
		UserID:         userID,
		Date:           dayStart(in.Date),
		Steps:          in.Steps,
		Sleep:          in.Sleep,
		HeartRate:      in.HeartRate,
		CaloriesBurned: in.CaloriesBurned,
		WaterML:        in.WaterML,
		MoodTag:        in.MoodTag,
	}

	// map form so zero values (a rest day's 0 steps) still overwrite
	attrs := map[string]interface{}{
		"steps":           in.Steps,
		"sleep":           in.Sleep,
		"heart_rate":      in.HeartRate,
		"calories_burned": in.CaloriesBurned,
		"water_ml":        in.WaterML,
		"mood_tag":        in.MoodTag,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND date = ?", userID, record.Date).
			Assign(attrs).
			FirstOrCreate(&record).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.HealthData{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 1 {
			return awardBadge(tx, userID, "First Steps")
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to log health data: %w", err)
	}
	return &record, nil
}

func awardBadge(tx *gorm.DB, userID uint, name string) error {
	var badge models.Badge
	if err := tx.Where("name = ?", name).First(&badge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // catalog not seeded, skip silently
		}
		return err
	}
	user := models.User{Model: gorm.Model{ID: userID}}
	return tx.Model(&user).Association("Badges").Append(&badge)
}

// ListRange returns the user's records ordered by date ascending, the
// shape the insight functions expect.
func (s *HealthService) ListRange(userID uint, from, to time.Time) ([]models.HealthData, error) {
	var rows []models.HealthData
	err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayStart(to)).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

// ListAll returns every record for the user, oldest first.
func (s *HealthService) ListAll(userID uint) ([]models.HealthData, error) {
	var rows []models.HealthData
	err := s.db.
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

// LastN returns the most recent n records, newest first.
func (s *HealthService) LastN(userID uint, n int) ([]models.HealthData, error) {
	var rows []models.HealthData
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(n).
		Find(&rows).Error
	return rows, err
}

// ForDate returns the record for one date, or nil when none exists.
func (s *HealthService) ForDate(userID uint, date time.Time) (*models.HealthData, error) {
	var row models.HealthData
	err := s.db.Where("user_id = ? AND date = ?", userID, dayStart(date)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// SimulateNextDay fabricates plausible metrics for the first unlogged
// date after the user's latest record (today when nothing is logged yet).
func (s *HealthService) SimulateNextDay(userID uint) (*models.HealthData, error) {
	newDate := dayStart(time.Now())
	var last models.HealthData
	err := s.db.Where("user_id = ?", userID).Order("date DESC").First(&last).Error
	if err == nil {
		newDate = dayStart(last.Date.AddDate(0, 0, 1))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var existing models.HealthData
	if err := s.db.Where("user_id = ? AND date = ?", userID, newDate).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDayAlreadyLogged, newDate.Format("Jan 02"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record := models.HealthData{
		UserID:         userID,
		Date:           newDate,
		Steps:          4000 + rand.Intn(8001),
		Sleep:          math.Round((6.0+rand.Float64()*3.0)*10) / 10,
		HeartRate:      55 + rand.Intn(21),
		CaloriesBurned: 300 + rand.Intn(401),
		WaterML:        1500 + rand.Intn(1501),
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to simulate day: %w", err)
	}
	return &record, nil
}
