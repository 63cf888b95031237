package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"campushub/src/core/config"
	"campushub/src/core/database"
	"campushub/src/core/logger"
	"campushub/src/core/router"
)

func main() {
	// Initialize the Fiber app
	app := fiber.New()

	// Middleware
	app.Use(recover.New())   // Recover middleware to handle panics
	app.Use(cors.New())      // CORS middleware for cross-origin requests
	app.Use(requestid.New()) // Middleware to generate unique request IDs

	// Structured logging
	logger.Init()

	// Setup environment variables
	config.SetupEnv()

	// Connect to the database
	database.ConnectDB()

	// Set up routes
	router.InitialiseAndSetupRoutes(app)

	// Get port from config and start the server
	port := config.Config("APP_PORT")
	if port == "" {
		port = "8080"
	}
	logger.Log.Info().Str("port", port).Msg("starting server")
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		logger.Log.Fatal().Err(err).Msg("server stopped")
	}
}
