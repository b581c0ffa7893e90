package main

import (
	"log"
	"os"

	"joyjoy-locums-backend/internal/api/routes"
	"joyjoy-locums-backend/internal/config"
	"joyjoy-locums-backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	_ "joyjoy-locums-backend/docs" // This is needed for swag
)

//	@title			JoyJoy Locums API
//	@version		1.0
//	@description	Shift arithmetic, pay and compliance endpoints for the JoyJoy Locums marketplace.

//	@contact.name	JoyJoy Locums Engineering
//	@contact.email	engineering@joyjoylocums.co.uk

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the Supabase access token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// The database only backs the requirement catalog
	var db *gorm.DB
	if cfg.UsesDatabaseCatalog() {
		db, err = database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			logrus.Fatal("Failed to initialize database:", err)
		}
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7008"
	}

	logrus.WithFields(logrus.Fields{
		"port":           port,
		"catalog_source": cfg.CatalogSource,
		"zero_length":    cfg.ZeroLengthPolicy(),
		"timezone":       cfg.ShiftTimezone,
	}).Info("Starting server")
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
