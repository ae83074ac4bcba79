package controllers

import (
	"net/http"

	"github.com/shaikRahilAhmed/nutriSync/services"

	"github.com/gin-gonic/gin"
)

func GetNutritionGoal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	goal, err := services.GetNutritionGoal(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, goal)
}

func UpdateNutritionGoal(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var body struct {
		DailyCalories float64 `json:"daily_calories" binding:"required"`
		DailyProtein  float64 `json:"daily_protein" binding:"required"`
		DailyCarbs    float64 `json:"daily_carbs" binding:"required"`
		DailyFat      float64 `json:"daily_fat" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpsertNutritionGoal(user.ID, body.DailyCalories, body.DailyProtein, body.DailyCarbs, body.DailyFat); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
