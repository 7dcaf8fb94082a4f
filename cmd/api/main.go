package main

import (
	"log"

	"recipebook/internal/app"
	"recipebook/pkg/config"
)

// @title           Recipebook API
// @version         1.0
// @description     Recipe sharing service with a social graph and activity feed.
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
