package main

import (
	"log"
	"os"

	v1 "github.com/ajshan23/alghazal-b-p/api/v1"
	"github.com/ajshan23/alghazal-b-p/config"
	"github.com/ajshan23/alghazal-b-p/database"
	"github.com/ajshan23/alghazal-b-p/lib/objectstore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize database connection and run migrations
	database.Initialize()

	// Initialize object storage for LPO documents and site photos
	storage, err := objectstore.NewClient()
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Set Gin mode
	if config.GetEnv("GIN_MODE", "release") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register API routes
	api := router.Group("/api")
	v1.RegisterRoutes(api, storage)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("🚀 Al Ghazal backend starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
