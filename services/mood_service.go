package services

import (
	"errors"
	"time"

	"backend/insights"
	"backend/models"

	"gorm.io/gorm"
)

type MoodService struct{ db *gorm.DB }

func NewMoodService(db *gorm.DB) *MoodService { return &MoodService{db: db} }

// LogToday upserts today's mood score. Re-logging replaces the score for
// the day instead of stacking entries.
func (s *MoodService) LogToday(userID uint, score int) error {
	if score < 1 || score > 5 {
		return errors.New("mood score must be between 1 and 5")
	}

	today := dayStart(time.Now())
	entry := models.MoodLog{UserID: userID, Date: today, MoodScore: score}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return tx.
			Where("user_id = ? AND date = ?", userID, today).
			Assign(models.MoodLog{MoodScore: score}).
			FirstOrCreate(&entry).Error
	})
}

// DailyAverages returns one point per day, averaging any duplicate
// same-day entries that predate the upsert behavior.
func (s *MoodService) DailyAverages(userID uint) (insights.Series, error) {
	var rows []models.MoodLog
	if err := s.db.
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	var series insights.Series
	var sum float64
	var n int
	flush := func(date time.Time) {
		if n > 0 {
			series = append(series, insights.Point{Date: date, Value: sum / float64(n)})
		}
	}

	var cur time.Time
	for _, r := range rows {
		d := dayStart(r.Date)
		if n > 0 && !d.Equal(cur) {
			flush(cur)
			sum, n = 0, 0
		}
		cur = d
		sum += float64(r.MoodScore)
		n++
	}
	flush(cur)
	return series, nil
}
