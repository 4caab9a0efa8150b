package main

import (
	"log"
	"net/http"
	"os"

	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/postal"
	"food-ordering-api/routes"
	"food-ordering-api/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})

	// Initialize database
	config.InitDB()

	// Wire services; the food cascade registers as a hotel
	// deactivation hook so it fires on every deactivation path.
	postalClient := postal.NewClient(config.PostalBaseURL(), config.PostalTimeout())
	addressSvc := services.NewAddressService(config.DB, postalClient)
	hotelSvc := services.NewHotelService(config.DB)
	foodSvc := services.NewFoodService(config.DB)
	cartSvc := services.NewCartService(config.DB)
	authSvc := services.NewAuthService(config.DB)
	hotelSvc.OnDeactivate(foodSvc.DeactivateByHotel)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.RequestID())

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Ordering API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, routes.Handlers{
		Auth:    handlers.NewAuthHandler(authSvc),
		Address: handlers.NewAddressHandler(addressSvc),
		Hotel:   handlers.NewHotelHandler(hotelSvc),
		Food:    handlers.NewFoodHandler(foodSvc),
		Cart:    handlers.NewCartHandler(cartSvc),
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
