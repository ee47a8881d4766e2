package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sidhant19/dental-center-management/internal/config"
	"github.com/sidhant19/dental-center-management/internal/routes"
	"github.com/sidhant19/dental-center-management/internal/seed"
	"github.com/sidhant19/dental-center-management/internal/storage"
	"github.com/sidhant19/dental-center-management/internal/store"
)

func main() {
	// Load environment variables; a missing .env just means real env vars
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Open the slot store backing the dataset
	slots, err := storage.Open(storage.Driver(cfg.Storage.Driver), cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Error opening storage: %v", err)
	}
	defer slots.Close()

	// Build the bundled seed dataset used when the data slot is empty
	seedSnapshot, err := seed.Default()
	if err != nil {
		log.Fatalf("Error building seed dataset: %v", err)
	}

	// Initialize the data store
	st, err := store.New(slots, seedSnapshot)
	if err != nil {
		log.Fatalf("Error initializing data store: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes - passing the store and config to let routes.go create the handlers
	routes.SetupRoutes(router, st, cfg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
