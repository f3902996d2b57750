package services

import (
	"fmt"
	"math"

	"backend/insights"
	"backend/models"

	"gorm.io/gorm"
)

// Insight is one titled card on the dashboard.
type Insight struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type DashboardInsights struct {
	Stress      *Insight          `json:"stress"`
	MindBody    Insight           `json:"mind_body"`
	Slots       insights.SlotPlan `json:"slots"`
	Environment Insight           `json:"environment"`
}

type DashboardService struct {
	db      *gorm.DB
	weather *WeatherService
	mood    *MoodService
}

func NewDashboardService(db *gorm.DB, weather *WeatherService, mood *MoodService) *DashboardService {
	return &DashboardService{db: db, weather: weather, mood: mood}
}

// Build assembles all dashboard insights for a user. Each computation is
// pure over records loaded up front; missing data degrades to the null
// insight for that card, never an error.
func (s *DashboardService) Build(user *models.User) (*DashboardInsights, error) {
	var health []models.HealthData
	if err := s.db.
		Where("user_id = ?", user.ID).
		Order("date ASC").
		Find(&health).Error; err != nil {
		return nil, err
	}

	mood, err := s.mood.DailyAverages(user.ID)
	if err != nil {
		return nil, err
	}

	var events []models.ScheduleEvent
	if err := s.db.Where("user_id = ?", user.ID).Order("start_hour ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	var hobbies []models.Hobby
	if err := s.db.Where("user_id = ?", user.ID).Find(&hobbies).Error; err != nil {
		return nil, err
	}

	out := &DashboardInsights{
		Stress:      s.stressInsight(user.ID, health),
		MindBody:    mindBodyInsight(health, mood),
		Slots:       slotInsight(events, len(hobbies)),
		Environment: s.weather.Advice(user.Location),
	}
	if out.Slots.Workout == "" {
		out.Slots.Workout = "No clear slot"
	}
	return out, nil
}

func (s *DashboardService) stressInsight(userID uint, health []models.HealthData) *Insight {
	days := make([]insights.DayMetrics, len(health))
	for i, h := range health {
		days[i] = insights.DayMetrics{
			Date:      h.Date,
			Steps:     h.Steps,
			Sleep:     h.Sleep,
			HeartRate: h.HeartRate,
		}
	}

	alert := insights.Detect(days, insights.DefaultAnomalyConfig())
	if alert == nil {
		return nil
	}
	EmitAlert(userID, alert.Kind, alert.Title, alert.Message)
	return &Insight{Title: alert.Title, Message: alert.Message}
}

var linkAdvice = map[string]string{
	"sleep": "Prioritizing sleep seems to be key for your mental well-being.",
	"steps": "Staying active seems to go hand in hand with your mood.",
}

func mindBodyInsight(health []models.HealthData, mood insights.Series) Insight {
	sleep := make(insights.Series, len(health))
	steps := make(insights.Series, len(health))
	for i, h := range health {
		sleep[i] = insights.Point{Date: h.Date, Value: h.Sleep}
		steps[i] = insights.Point{Date: h.Date, Value: float64(h.Steps)}
	}

	link := insights.StrongestLink(mood, []insights.NamedSeries{
		{Name: "sleep", Points: sleep},
		{Name: "steps", Points: steps},
	}, insights.DefaultCorrelationConfig())

	if link == nil {
		return Insight{
			Title:   "Mind-Body Insight",
			Message: "No strong pattern yet. Keep logging your mood and daily metrics.",
		}
	}

	direction := "positive"
	if !link.Positive {
		direction = "negative"
	}
	msg := fmt.Sprintf("We've found a strong %s link between your %s and mood (%d%% correlation).",
		direction, link.Metric, int(math.Abs(link.Coefficient)*100))
	if advice, ok := linkAdvice[link.Metric]; ok {
		msg += " " + advice
	}
	return Insight{Title: "Mind-Body Insight", Message: msg}
}

func slotInsight(events []models.ScheduleEvent, hobbyCount int) insights.SlotPlan {
	intervals := make([]insights.Interval, len(events))
	for i, ev := range events {
		intervals[i] = insights.Interval{Start: ev.StartHour, End: ev.EndHour}
	}
	return insights.FindSlots(intervals, hobbyCount, insights.DefaultSlotConfig())
}
