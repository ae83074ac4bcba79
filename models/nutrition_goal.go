package models

import (
	"gorm.io/gorm"
)

// NutritionGoal holds each user's daily macro targets.
type NutritionGoal struct {
	gorm.Model
	UserID        uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	DailyCalories float64 `json:"daily_calories"` // e.g. 2000 kcal
	DailyProtein  float64 `json:"daily_protein"`  // e.g. 120 g
	DailyCarbs    float64 `json:"daily_carbs"`    // e.g. 200 g
	DailyFat      float64 `json:"daily_fat"`      // e.g. 65 g
}
