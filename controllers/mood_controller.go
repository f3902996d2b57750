package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	Svc *services.MoodService
}

func NewMoodController(svc *services.MoodService) *MoodController {
	return &MoodController{Svc: svc}
}

// POST /mood — upsert today's mood score
func (m *MoodController) LogMood(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		MoodScore int `json:"mood_score" binding:"required,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := m.Svc.LogToday(userID, input.MoodScore); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mood logged!"})
}
