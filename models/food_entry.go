package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged food item. Nutrition values are a snapshot at log time,
// either typed in manually or copied from an AI analysis result.
type FoodEntry struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	FoodName  string    `gorm:"not null" json:"food_name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	MealType  string    `json:"meal_type"` // "Breakfast" | "Lunch" | "Dinner" | "Snack"
	EntryDate time.Time `gorm:"index;not null" json:"entry_date"`
}
