package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"airport_api/internal/cache"
	"airport_api/internal/config"
	"airport_api/internal/logger"
	"airport_api/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Optional Redis flight-list cache
	cache.Init()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("server running at :%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
