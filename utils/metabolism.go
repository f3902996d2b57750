package utils

import (
	"errors"
	"strings"
)

// CalculateTDEE estimates total daily energy expenditure from the revised
// Harris-Benedict BMR with a sedentary activity multiplier.
func CalculateTDEE(gender string, age int, weightKg, heightCm float64) int {
	var bmr float64
	if strings.EqualFold(gender, "male") {
		bmr = 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	} else {
		bmr = 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
	}
	return int(bmr * 1.2)
}

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obesity"
	}
}
