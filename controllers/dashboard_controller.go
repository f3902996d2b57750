package controllers

import (
	"net/http"

	"backend/config"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

// GET /dashboard — all derived insights for the logged-in user
func (d *DashboardController) GetInsights(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	out, err := d.Svc.Build(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /dashboard/alerts — recent persisted insight alerts
func (d *DashboardController) RecentAlerts(c *gin.Context) {
	userID := c.GetUint("userID")
	alerts, err := services.RecentAlerts(config.DB, userID, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}
