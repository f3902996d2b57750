package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type RegisterParams struct {
	Username string
	Password string
	Email    string
	Age      int
	Gender   string
	WeightKg float64
	HeightCm float64
	Location string
}

func RegisterUser(p RegisterParams) (*models.User, error) {
	var existing models.User
	err := config.DB.Where("username = ?", p.Username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(p.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: p.Username,
		Password: hashed,
		Email:    p.Email,
		Age:      p.Age,
		Gender:   p.Gender,
		WeightKg: p.WeightKg,
		HeightCm: p.HeightCm,
	}
	if p.Location != "" {
		user.Location = p.Location
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(username, password string) (*models.User, error) {
	user, err := FindUserByUsername(username)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
