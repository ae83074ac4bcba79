package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shaikRahilAhmed/nutriSync/models"
)

var (
	// ErrNoJSON means the reply contained no {...} span at all.
	ErrNoJSON = errors.New("no JSON object found in model reply")
	// ErrMalformedJSON means a {...} span was found but did not parse.
	ErrMalformedJSON = errors.New("malformed JSON in model reply")
	// ErrDishUnrecognized is the model's "Unknown Food" sentinel. It is
	// an expected domain outcome, not a parse failure; callers report it
	// in-band with a 200.
	ErrDishUnrecognized = errors.New("model could not identify the dish")
)

// extractJSON slices from the first "{" to the last "}" in free-form
// model text. This is a heuristic, not a parser: prose containing
// literal braces outside the JSON will mis-extract.
func extractJSON(reply string) (string, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}
	return reply[start : end+1], nil
}

// ParseNutritionReply recovers the nutrition object from a model reply.
// The record is an open mapping: nutrient keys and value types pass
// through exactly as the model produced them, with no schema check
// beyond JSON well-formedness and the "Unknown Food" sentinel.
func ParseNutritionReply(reply string) (map[string]interface{}, error) {
	raw, err := extractJSON(reply)
	if err != nil {
		return nil, err
	}

	var record map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, ErrMalformedJSON
	}

	if dish, ok := record["dish"].(string); ok && strings.Contains(strings.ToLower(dish), "unknown food") {
		return nil, ErrDishUnrecognized
	}

	return record, nil
}

// ParseMealPlanReply recovers the {meals:[...]} object from a model
// reply.
func ParseMealPlanReply(reply string) (*models.MealPlan, error) {
	raw, err := extractJSON(reply)
	if err != nil {
		return nil, err
	}

	var plan models.MealPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, ErrMalformedJSON
	}

	return &plan, nil
}
