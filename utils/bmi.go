package utils

import "errors"

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return bmi, nil
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
		return "Obese"
	}
}

// ActivityMultipliers maps activity level names to TDEE factors.
var ActivityMultipliers = map[string]float64{
	"Sedentary":         1.2,
	"Lightly Active":    1.375,
	"Moderately Active": 1.55,
	"Very Active":       1.725,
}

// CalculateBMR uses the Mifflin-St Jeor equation.
func CalculateBMR(heightCm, weightKg float64, ageYears int, gender string) (float64, error) {
	if ageYears <= 0 || ageYears > 120 {
		return 0, errors.New("age out of plausible range")
	}
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}

	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender == "Male" {
		return base + 5, nil
	}
	return base - 161, nil
}

// CalculateTDEE scales BMR by the activity multiplier. Unknown levels
// fall back to sedentary.
func CalculateTDEE(bmr float64, activityLevel string) float64 {
	m, ok := ActivityMultipliers[activityLevel]
	if !ok {
		m = ActivityMultipliers["Sedentary"]
	}
	return bmr * m
}

// CalculateCalorieNeeds applies a flat 500 kcal deficit or surplus
// depending on the user's goal.
func CalculateCalorieNeeds(tdee float64, goal string) float64 {
	switch goal {
	case "Weight Loss":
		return tdee - 500
	case "Weight Gain":
		return tdee + 500
	default:
		return tdee
	}
}
