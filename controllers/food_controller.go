package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"backend/config"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{Svc: svc}
}

// POST /food — describe a meal, calories are estimated by the AI service
func (f *FoodController) LogFood(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		FoodDescription string `json:"food_description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := f.Svc.LogMeal(userID, input.FoodDescription)
	if errors.Is(err, services.ErrAnalysisFailed) {
		// degraded, user-visible message; not a server failure
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "The AI could not analyze that meal. Please try again.",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Successfully logged %q with an estimated %d calories.", entry.MealDescription, entry.Calories),
		"log":     entry,
	})
}

// GET /food/summary — today's energy balance
func (f *FoodController) TodaySummary(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	summary, err := f.Svc.TodaySummary(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DELETE /food/:id
func (f *FoodController) DeleteFood(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := f.Svc.DeleteLog(userID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food log not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
