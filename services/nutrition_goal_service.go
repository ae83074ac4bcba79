package services

import (
	"errors"

	"github.com/shaikRahilAhmed/nutriSync/config"
	"github.com/shaikRahilAhmed/nutriSync/models"

	"gorm.io/gorm"
)

// Defaults shown to users who never set goals.
const (
	defaultDailyCalories = 2000
	defaultDailyProtein  = 120
	defaultDailyCarbs    = 200
	defaultDailyFat      = 65
)

// GetNutritionGoal returns the user's goals, falling back to the
// defaults when none are stored yet.
func GetNutritionGoal(userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.NutritionGoal{
			UserID:        userID,
			DailyCalories: defaultDailyCalories,
			DailyProtein:  defaultDailyProtein,
			DailyCarbs:    defaultDailyCarbs,
			DailyFat:      defaultDailyFat,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func UpsertNutritionGoal(userID uint, calories, protein, carbs, fat float64) error {
	var goal models.NutritionGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.NutritionGoal{
			UserID:        userID,
			DailyCalories: calories,
			DailyProtein:  protein,
			DailyCarbs:    carbs,
			DailyFat:      fat,
		}
		return config.DB.Create(&goal).Error
	}
	if err != nil {
		return err
	}

	goal.DailyCalories = calories
	goal.DailyProtein = protein
	goal.DailyCarbs = carbs
	goal.DailyFat = fat

	return config.DB.Save(&goal).Error
}
