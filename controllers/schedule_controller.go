package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ScheduleController struct {
	Svc *services.ScheduleService
}

func NewScheduleController(svc *services.ScheduleService) *ScheduleController {
	return &ScheduleController{Svc: svc}
}

// POST /schedule/events
func (s *ScheduleController) AddEvent(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		EventName string  `json:"event_name" binding:"required"`
		StartHour float64 `json:"start_hour"`
		EndHour   float64 `json:"end_hour"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev, err := s.Svc.AddEvent(userID, input.EventName, input.StartHour, input.EndHour)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Event added!", "event": ev})
}

// GET /schedule/events
func (s *ScheduleController) ListEvents(c *gin.Context) {
	userID := c.GetUint("userID")
	events, err := s.Svc.ListEvents(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

// DELETE /schedule/events/:id
func (s *ScheduleController) DeleteEvent(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := s.Svc.DeleteEvent(userID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /schedule/hobbies
func (s *ScheduleController) AddHobby(c *gin.Context) {
	userID := c.GetUint("userID")

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hobby, err := s.Svc.AddHobby(userID, input.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Hobby added!", "hobby": hobby})
}

// GET /schedule/hobbies
func (s *ScheduleController) ListHobbies(c *gin.Context) {
	userID := c.GetUint("userID")
	hobbies, err := s.Svc.ListHobbies(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hobbies)
}

// DELETE /schedule/hobbies/:id
func (s *ScheduleController) DeleteHobby(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := s.Svc.DeleteHobby(userID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "hobby not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
