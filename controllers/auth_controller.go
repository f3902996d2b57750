package controllers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"backend/config"
	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required,min=6"`
	Email    string  `json:"email" binding:"omitempty,email"`
	Age      int     `json:"age" binding:"required,gt=0"`
	Gender   string  `json:"gender" binding:"required"`
	WeightKg float64 `json:"weight_kg" binding:"required,gt=0"`
	HeightCm float64 `json:"height_cm" binding:"required,gt=0"`
	Location string  `json:"location"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err := services.RegisterUser(services.RegisterParams{
		Username: input.Username,
		Password: input.Password,
		Email:    input.Email,
		Age:      input.Age,
		Gender:   input.Gender,
		WeightKg: input.WeightKg,
		HeightCm: input.HeightCm,
		Location: input.Location,
	})
	if errors.Is(err, services.ErrUsernameTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful! Please log in."})
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.AuthenticateUser(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		return
	}

	if user.MFAEnabled && user.Email != "" {
		code := fmt.Sprintf("%06d", rand.Intn(1000000))
		user.MFACode = code
		config.DB.Save(user)

		if err := utils.SendMFAEmail(user.Email, code); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send MFA code"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "MFA code sent to email"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

type VerifyInput struct {
	Username string `json:"username" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

func VerifyMFA(c *gin.Context) {
	var input VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.FindUserByUsername(input.Username)
	if err != nil || user.MFACode == "" || user.MFACode != input.Code {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid MFA code"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	user.MFACode = ""
	config.DB.Save(user)

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func ForgotPassword(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Always answer the same way so usernames can't be enumerated.
	reply := gin.H{"message": "If the account exists, a reset code has been sent"}

	user, err := services.FindUserByUsername(input.Username)
	if err != nil || user.Email == "" {
		c.JSON(http.StatusOK, reply)
		return
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	config.DB.Save(user)

	utils.SendResetEmail(user.Email, token)

	c.JSON(http.StatusOK, reply)
}

func ResetPassword(c *gin.Context) {
	var input struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var user models.User
	result := config.DB.Where("reset_token = ?", input.Token).First(&user)
	if result.Error != nil || time.Now().After(user.ResetTokenExp) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	hashed, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	config.DB.Save(&user)

	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset"})
}
