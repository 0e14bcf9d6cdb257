package main

import (
	"log"

	"github.com/joho/godotenv"

	"descstats/internal"
	"descstats/internal/config"
	"descstats/internal/container"
	"descstats/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	c, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	server := ui.NewServer(c)
	internal.DefaultLogger.Info("starting descstats server on port %s", cfg.Server.Port)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
