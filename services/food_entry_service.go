package services

import (
	"errors"
	"time"

	"github.com/shaikRahilAhmed/nutriSync/config"
	"github.com/shaikRahilAhmed/nutriSync/models"
)

type FoodEntryInput struct {
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	MealType string  `json:"meal_type"`
}

func AddFoodEntry(userID uint, input FoodEntryInput) (*models.FoodEntry, error) {
	if input.FoodName == "" {
		return nil, errors.New("food name is required")
	}

	entry := models.FoodEntry{
		UserID:    userID,
		FoodName:  input.FoodName,
		Calories:  input.Calories,
		Protein:   input.Protein,
		Carbs:     input.Carbs,
		Fat:       input.Fat,
		MealType:  input.MealType,
		EntryDate: dayStartLocal(time.Now()),
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListFoodEntries returns the user's entries for the given day.
func ListFoodEntries(userID uint, date time.Time) ([]models.FoodEntry, error) {
	start := dayStartLocal(date)
	end := start.Add(24 * time.Hour)

	var entries []models.FoodEntry
	err := config.DB.
		Where("user_id = ? AND entry_date >= ? AND entry_date < ?", userID, start, end).
		Order("created_at asc").
		Find(&entries).Error
	return entries, err
}

// DeleteFoodEntry removes one of the user's own entries.
func DeleteFoodEntry(userID, entryID uint) error {
	result := config.DB.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.FoodEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("food entry not found")
	}
	return nil
}

// DailyTotals sums today's intake and compares it against the user's
// goals.
func DailyTotals(userID uint, date time.Time) (map[string]interface{}, error) {
	entries, err := ListFoodEntries(userID, date)
	if err != nil {
		return nil, err
	}

	var cals, prot, carbs, fat float64
	for _, e := range entries {
		cals += e.Calories
		prot += e.Protein
		carbs += e.Carbs
		fat += e.Fat
	}

	goal, err := GetNutritionGoal(userID)
	if err != nil {
		return nil, err
	}

	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target
		if p > 1 {
			return 1
		}
		return p
	}

	return map[string]interface{}{
		"calories": map[string]float64{"consumed": cals, "goal": goal.DailyCalories, "percent": pct(cals, goal.DailyCalories)},
		"protein":  map[string]float64{"consumed": prot, "goal": goal.DailyProtein, "percent": pct(prot, goal.DailyProtein)},
		"carbs":    map[string]float64{"consumed": carbs, "goal": goal.DailyCarbs, "percent": pct(carbs, goal.DailyCarbs)},
		"fat":      map[string]float64{"consumed": fat, "goal": goal.DailyFat, "percent": pct(fat, goal.DailyFat)},
	}, nil
}
