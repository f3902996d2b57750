package controllers

import (
	"errors"
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Svc *services.HealthService
}

func NewHealthController(svc *services.HealthService) *HealthController {
	return &HealthController{Svc: svc}
}

type healthInput struct {
	Date           string  `json:"date" binding:"required"`
	Steps          int     `json:"steps" binding:"gte=0"`
	Sleep          float64 `json:"sleep" binding:"gte=0"`
	HeartRate      int     `json:"heart_rate" binding:"gte=0"`
	CaloriesBurned int     `json:"calories_burned" binding:"gte=0"`
	WaterML        int     `json:"water_ml" binding:"gte=0"`
	MoodTag        string  `json:"mood_tag"`
}

// POST /health — upsert by (user, date)
func (h *HealthController) LogDay(c *gin.Context) {
	userID := c.GetUint("userID")

	var input healthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", input.Date, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	record, err := h.Svc.UpsertDay(userID, services.HealthInput{
		Date:           date,
		Steps:          input.Steps,
		Sleep:          input.Sleep,
		HeartRate:      input.HeartRate,
		CaloriesBurned: input.CaloriesBurned,
		WaterML:        input.WaterML,
		MoodTag:        input.MoodTag,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data logged successfully!", "record": record})
}

// GET /health?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *HealthController) List(c *gin.Context) {
	userID := c.GetUint("userID")

	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr == "" && toStr == "" {
		rows, err := h.Svc.ListAll(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, rows)
		return
	}

	from, err := time.ParseInLocation("2006-01-02", fromStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
		return
	}

	rows, err := h.Svc.ListRange(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /health/report — last 7 days, newest first
func (h *HealthController) Report(c *gin.Context) {
	userID := c.GetUint("userID")
	rows, err := h.Svc.LastN(userID, 7)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /health/simulate — fabricate the next unlogged day
func (h *HealthController) SimulateDay(c *gin.Context) {
	userID := c.GetUint("userID")
	record, err := h.Svc.SimulateNextDay(userID)
	if errors.Is(err, services.ErrDayAlreadyLogged) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "A new day has been simulated!", "record": record})
}
