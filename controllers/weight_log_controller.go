package controllers

import (
	"net/http"
	"strconv"

	"github.com/shaikRahilAhmed/nutriSync/config"
	"github.com/shaikRahilAhmed/nutriSync/models"
	"github.com/shaikRahilAhmed/nutriSync/services"

	"github.com/gin-gonic/gin"
)

// currentUser resolves the authenticated user from the email claim set
// by the auth middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	email := c.GetString("email")
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	return &user, true
}

func LogWeight(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var body struct {
		Weight float64 `json:"weight"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.LogWeight(user.ID, body.Weight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GET /weight/logs?limit=7
func ListWeightLogs(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	limit := 0
	if q := c.Query("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	logs, err := services.ListWeightLogs(user.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	loggedToday, err := services.HasLoggedToday(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs, "logged_today": loggedToday})
}

func GetWeightProgress(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	progress, err := services.WeightProgress(user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no weight logs yet"})
		return
	}

	c.JSON(http.StatusOK, progress)
}
