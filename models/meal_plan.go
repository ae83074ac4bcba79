package models

// MealPlan is the parsed shape of the AI meal-planner reply.
// It only lives for the duration of one request; nothing is persisted.
type MealPlan struct {
	Meals []MealOption `json:"meals"`
}

type MealOption struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Description string  `json:"description"`
}
