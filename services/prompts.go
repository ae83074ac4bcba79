package services

import "fmt"

// Prompt templates for the Gemini calls. Request fields are
// interpolated verbatim, so user-supplied text flows into the prompt
// unescaped.

const foodGatePrompt = `Analyze the image and answer only with "yes" or "no". Is this image food?`

const imageNutritionPrompt = `You are a food nutrition expert. Identify the dish in the given image and provide an estimated nutritional breakdown per 100 grams. If the dish is unclear, return "Unknown Food". Format response strictly as JSON:

{
  "dish": "Dish Name",
  "calories_per_100g": "XXX kcal",
  "protein_per_100g": "XX g",
  "carbs_per_100g": "XX g",
  "fat_per_100g": "XX g",
  "sugar_per_100g": "XX g",
  "fiber_per_100g": "XX g",
  "sodium_per_100g": "XX mg",
  "calcium_per_100g": "XX mg",
  "iron_per_100g": "XX mg"
}

Ensure values are estimated ranges based on common nutritional data.`

func textNutritionPrompt(dish, portion string) string {
	return fmt.Sprintf(`You are a food nutrition expert. Estimate the nutritional values for "%s" for a portion size of "%s". Provide the output in JSON format with approximate values (no ranges). Example output:

{
  "dish": "Dish Name",
  "portion": "Portion Size",
  "calories": 400,
  "protein_g": 17,
  "carbs_g": 31,
  "fat_g": 23
}

Only return valid JSON data.`, dish, portion)
}

func mealPlanPrompt(ingredients, cuisine, mealType string, targetCalories int) string {
	return fmt.Sprintf(`You are a dietitian. Suggest 3-4 meal options based on the following details:
- Preferred ingredients: %s
- Cuisine: %s
- Meal Type: %s
- Target Calories: %d kcal

Each meal should include:
- Dish name
- Approximate calories
- Brief description

Respond in the following JSON format:

{
  "meals": [
    { "name": "Meal Name", "calories": XXX, "description": "Short description" },
    { "name": "Meal Name", "calories": XXX, "description": "Short description" },
    { "name": "Meal Name", "calories": XXX, "description": "Short description" }
  ]
}`, ingredients, cuisine, mealType, targetCalories)
}
