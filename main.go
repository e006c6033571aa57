package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/adrienb3106/fridgey-backend/config"
	"github.com/adrienb3106/fridgey-backend/db"
	"github.com/adrienb3106/fridgey-backend/middleware"
	"github.com/adrienb3106/fridgey-backend/routes"
)

func main() {
	fmt.Println("Starting Fridgey API...")

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()

	// Initialize database
	db.Connect(cfg)
	db.MakeMigration(db.GetDB())

	// Set Gin to release mode in production
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Register routes
	routes.UserRoutes(router)
	routes.GroupRoutes(router)
	routes.ItemRoutes(router)
	routes.StockRoutes(router)
	routes.MovementRoutes(router)

	// Start server
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
