package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/shaikRahilAhmed/nutriSync/services"
	"github.com/shaikRahilAhmed/nutriSync/utils"

	"github.com/gin-gonic/gin"
)

// Health is the liveness endpoint.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "Hello from backend")
}

// AnalyzeDishImage relays an uploaded dish photo through two model
// calls: a cheap yes/no food gate first, then the full nutrition
// analysis only when the gate passes. "Not food" and "unknown dish"
// are soft outcomes reported in-band with a 200 so the client handles
// all domain errors uniformly; only upstream or parse failures become
// a 500. The staged file is deleted on every path.
func AnalyzeDishImage(c *gin.Context) {
	fileHeader, err := c.FormFile("dishImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A dish image is required."})
		return
	}

	path, err := utils.SaveUpload(fileHeader, utils.UploadDir())
	if err != nil {
		log.Printf("failed to stage upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}
	defer utils.RemoveUpload(path)

	imageData, err := os.ReadFile(path)
	if err != nil {
		log.Printf("failed to read staged upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	svc := services.NewGeminiService()

	isFood, err := svc.CheckIsFood(imageData, mimeType)
	if err != nil {
		log.Printf("food gate check failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}
	if !isFood {
		c.JSON(http.StatusOK, gin.H{"error": "This image does not contain food. Please upload a valid dish image."})
		return
	}

	reply, err := svc.AnalyzeDishImage(imageData, mimeType)
	if err != nil {
		log.Printf("image analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}

	record, err := services.ParseNutritionReply(reply)
	if err != nil {
		if errors.Is(err, services.ErrDishUnrecognized) {
			c.JSON(http.StatusOK, gin.H{"error": "Could not identify the dish. Please upload a clearer food image."})
			return
		}
		log.Printf("failed to parse nutrition reply: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// AnalyzeNutrition estimates nutrition for a named dish and portion.
func AnalyzeNutrition(c *gin.Context) {
	var body struct {
		Dish    string `json:"dish"`
		Portion string `json:"portion"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Dish == "" || body.Portion == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dish name and portion size are required."})
		return
	}

	svc := services.NewGeminiService()

	reply, err := svc.AnalyzeNutrition(body.Dish, body.Portion)
	if err != nil {
		log.Printf("nutrition analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze nutrition data."})
		return
	}

	record, err := services.ParseNutritionReply(reply)
	if err != nil {
		if errors.Is(err, services.ErrDishUnrecognized) {
			c.JSON(http.StatusOK, gin.H{"error": "Could not identify the dish. Please try a more specific name."})
			return
		}
		log.Printf("failed to parse nutrition reply: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze nutrition data."})
		return
	}

	c.JSON(http.StatusOK, record)
}

// GenerateMealPlan asks the model for 3-4 meal suggestions.
func GenerateMealPlan(c *gin.Context) {
	var body struct {
		Ingredients    string `json:"ingredients"`
		Cuisine        string `json:"cuisine"`
		MealType       string `json:"mealType"`
		TargetCalories int    `json:"targetCalories"`
	}
	if err := c.ShouldBindJSON(&body); err != nil ||
		body.Ingredients == "" || body.Cuisine == "" || body.MealType == "" || body.TargetCalories == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}

	svc := services.NewGeminiService()

	reply, err := svc.GenerateMealPlan(body.Ingredients, body.Cuisine, body.MealType, body.TargetCalories)
	if err != nil {
		log.Printf("meal plan generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate meal plan."})
		return
	}

	plan, err := services.ParseMealPlanReply(reply)
	if err != nil {
		log.Printf("failed to parse meal plan reply: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate meal plan."})
		return
	}

	c.JSON(http.StatusOK, plan)
}
