package services

import (
	"backend/config"
	"backend/models"
	"backend/utils"
)

type UserProfile struct {
	Username    string         `json:"username"`
	Email       string         `json:"email,omitempty"`
	Age         int            `json:"age"`
	Gender      string         `json:"gender"`
	WeightKg    float64        `json:"weight_kg"`
	HeightCm    float64        `json:"height_cm"`
	Location    string         `json:"location"`
	MFAEnabled  bool           `json:"mfa_enabled"`
	TDEE        int            `json:"tdee"`
	BMI         float64        `json:"bmi,omitempty"`
	BMICategory string         `json:"bmi_category,omitempty"`
	Badges      []models.Badge `json:"badges"`
}

func GetUserProfile(userID uint) (*UserProfile, error) {
	var user models.User
	if err := config.DB.Preload("Badges").First(&user, userID).Error; err != nil {
		return nil, err
	}

	profile := &UserProfile{
		Username:   user.Username,
		Email:      user.Email,
		Age:        user.Age,
		Gender:     user.Gender,
		WeightKg:   user.WeightKg,
		HeightCm:   user.HeightCm,
		Location:   user.Location,
		MFAEnabled: user.MFAEnabled,
		TDEE:       utils.CalculateTDEE(user.Gender, user.Age, user.WeightKg, user.HeightCm),
		Badges:     user.Badges,
	}
	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		profile.BMI = bmi
		profile.BMICategory = utils.BMICategory(bmi)
	}
	return profile, nil
}

type ProfileUpdate struct {
	Email      *string  `json:"email"`
	Age        *int     `json:"age"`
	WeightKg   *float64 `json:"weight_kg"`
	HeightCm   *float64 `json:"height_cm"`
	Location   *string  `json:"location"`
	MFAEnabled *bool    `json:"mfa_enabled"`
}

func UpdateUserProfile(userID uint, upd ProfileUpdate) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}

	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.Age != nil {
		user.Age = *upd.Age
	}
	if upd.WeightKg != nil {
		user.WeightKg = *upd.WeightKg
	}
	if upd.HeightCm != nil {
		user.HeightCm = *upd.HeightCm
	}
	if upd.Location != nil {
		user.Location = *upd.Location
	}
	if upd.MFAEnabled != nil {
		user.MFAEnabled = *upd.MFAEnabled
	}

	return config.DB.Save(&user).Error
}
