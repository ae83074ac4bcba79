package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shaikRahilAhmed/nutriSync/services"

	"github.com/gin-gonic/gin"
)

func AddFoodEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var input services.FoodEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.AddFoodEntry(user.ID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GET /food/entries?date=2026-08-31 (defaults to today)
func ListFoodEntries(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	date := time.Now()
	if q := c.Query("date"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	entries, err := services.ListFoodEntries(user.ID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

func DeleteFoodEntry(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := services.DeleteFoodEntry(user.ID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func GetDailyTotals(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	totals, err := services.DailyTotals(user.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, totals)
}
