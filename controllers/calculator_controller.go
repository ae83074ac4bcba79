package controllers

import (
	"net/http"

	"github.com/shaikRahilAhmed/nutriSync/utils"

	"github.com/gin-gonic/gin"
)

type CalculatorInput struct {
	Height        float64 `json:"height" binding:"required"` // cm
	Weight        float64 `json:"weight" binding:"required"` // kg
	Age           int     `json:"age" binding:"required"`
	Gender        string  `json:"gender" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	Goal          string  `json:"goal" binding:"required"`
}

// Calculate derives BMI, BMR, TDEE and the calorie target from body
// metrics. Stateless; nothing is stored.
func Calculate(c *gin.Context) {
	var input CalculatorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bmi, err := utils.CalculateBMI(input.Height, input.Weight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bmr, err := utils.CalculateBMR(input.Height, input.Weight, input.Age, input.Gender)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tdee := utils.CalculateTDEE(bmr, input.ActivityLevel)

	c.JSON(http.StatusOK, gin.H{
		"bmi":            bmi,
		"bmi_category":   utils.BMICategory(bmi),
		"bmr":            bmr,
		"tdee":           tdee,
		"daily_calories": utils.CalculateCalorieNeeds(tdee, input.Goal),
	})
}
