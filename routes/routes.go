package routes

import (
	"os"
	"strings"

	"github.com/shaikRahilAhmed/nutriSync/controllers"
	"github.com/shaikRahilAhmed/nutriSync/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = allowedOrigins()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	corsCfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	// Liveness
	r.GET("/", controllers.Health)

	// AI relay endpoints (no auth, mirrors the hosted deployment)
	r.POST("/analyze", controllers.AnalyzeDishImage)
	r.POST("/analyze-nutrition", controllers.AnalyzeNutrition)
	r.POST("/generate-meal-plan", controllers.GenerateMealPlan)

	// Stateless calculators
	r.POST("/calculator", controllers.Calculate)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	// Protected tracking routes
	track := r.Group("/")
	track.Use(middlewares.AuthMiddleware())
	{
		track.POST("weight/logs", controllers.LogWeight)
		track.GET("weight/logs", controllers.ListWeightLogs)
		track.GET("weight/progress", controllers.GetWeightProgress)

		track.POST("food/entries", controllers.AddFoodEntry)
		track.GET("food/entries", controllers.ListFoodEntries)
		track.DELETE("food/entries/:id", controllers.DeleteFoodEntry)
		track.GET("food/totals", controllers.GetDailyTotals)

		track.GET("goals", controllers.GetNutritionGoal)
		track.PUT("goals", controllers.UpdateNutritionGoal)
	}

	return r
}

func allowedOrigins() []string {
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		return strings.Split(v, ",")
	}
	return []string{
		"http://localhost:8080",
		"http://localhost:8081",
		"https://nutrisync-ai.vercel.app",
		"https://nutri-sync-r.vercel.app",
	}
}
