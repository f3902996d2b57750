package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

const chatSystemPrompt = "You are a friendly wellness assistant. Provide concise, safe advice. Do not give medical diagnoses."

type ChatController struct {
	AI *services.GeminiService
}

func NewChatController(ai *services.GeminiService) *ChatController {
	return &ChatController{AI: ai}
}

// POST /api/chat — proxy a free-text question to the AI collaborator.
// An AI failure degrades to an inline reply, never an error status.
func (ch *ChatController) Chat(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := ch.AI.Complete(chatSystemPrompt, input.Message)
	if err != nil {
		reply = "Error connecting to the AI service. Please try again later."
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
