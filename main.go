package main

import (
	"log"
	"os"

	"github.com/spotilike/api/auth"
	"github.com/spotilike/api/config"
	"github.com/spotilike/api/handlers"
	"github.com/spotilike/api/importer"
)

func main() {
	config.Init()

	strategy := auth.FromEnv()
	log.Printf("auth strategy: %s", strategy.Name())

	router := handlers.SetupRouter(config.DB, strategy, importer.FromEnv())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
