package main

import (
	"os"

	"github.com/shaikRahilAhmed/nutriSync/config"
	"github.com/shaikRahilAhmed/nutriSync/routes"
	"github.com/shaikRahilAhmed/nutriSync/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
