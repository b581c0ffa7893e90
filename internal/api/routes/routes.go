package routes

import (
	"context"
	"net/http"

	"joyjoy-locums-backend/internal/api/handlers"
	"joyjoy-locums-backend/internal/api/middleware"
	"joyjoy-locums-backend/internal/auth"
	"joyjoy-locums-backend/internal/compliance"
	"joyjoy-locums-backend/internal/config"
	"joyjoy-locums-backend/internal/geo"
	"joyjoy-locums-backend/internal/marketplace"
	"joyjoy-locums-backend/internal/repository"
	"joyjoy-locums-backend/internal/service"
	"joyjoy-locums-backend/internal/session"
	"joyjoy-locums-backend/internal/shift"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// MaxRequestBodyBytes bounds every request body; a 500-shift batch fits comfortably
const MaxRequestBodyBytes = 2 << 20

// SetupRoutes configures all the routes for the application.
// db is only needed when the requirement catalog is read from Postgres and may be nil otherwise.
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.BodyLimit(MaxRequestBodyBytes))

	validator := shift.NewValidator()
	calculator := shift.NewCalculator(cfg.ZeroLengthPolicy(), cfg.Location())

	// Requirement catalog source
	var catalogSource compliance.Source
	if cfg.UsesDatabaseCatalog() && db != nil {
		catalogSource = repository.NewCatalogRepository(db, cfg.CatalogVersion)
	} else {
		if cfg.UsesDatabaseCatalog() {
			logrus.Warn("Database catalog requested without a database connection, falling back to the catalog file")
		}
		catalogSource = compliance.NewFileSource(cfg.CatalogPath)
	}

	// Postcode centroids
	centroids, err := geo.LoadCentroids(cfg.PostcodesPath)
	if err != nil {
		logrus.WithError(err).Warn("Postcode centroids unavailable, distance estimates will fail")
	}
	estimator := geo.NewEstimator(centroids)

	// Marketplace client, optional
	var marketplaceReader service.MarketplaceReader
	client, err := marketplace.NewClient(cfg.UpstreamBaseURL, cfg.SupabaseAnonKey, cfg.UpstreamTimeout())
	if err != nil {
		logrus.WithError(err).Warn("Marketplace API not configured, dashboard and compliance/me are disabled")
	} else {
		marketplaceReader = client
	}

	// Initialize services
	catalogService := service.NewCatalogService(catalogSource)
	calculationService := service.NewCalculationService(calculator, validator)
	complianceService := service.NewComplianceService(catalogService, marketplaceReader, validator)
	dashboardService := service.NewDashboardService(marketplaceReader, calculator)
	distanceService := service.NewDistanceService(estimator)

	if _, err := catalogService.Current(context.Background()); err != nil {
		logrus.WithError(err).Warn("Requirement catalog failed to load, retrying on first use")
	}

	// Initialize auth configuration and services
	authConfig := auth.NewAuthConfig(cfg)
	var refresher session.Refresher
	if authConfig.CanRefresh() {
		supabase, err := session.NewSupabaseRefresher(authConfig.SupabaseURL, authConfig.AnonKey, authConfig.RefreshTimeout)
		if err != nil {
			logrus.WithError(err).Warn("Session refresh disabled")
		} else {
			refresher = supabase
		}
	}

	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	authService, err := auth.NewAuthService(authConfig, refresher)
	if err != nil {
		logrus.WithError(err).Warn("Failed to initialize auth service")
	} else {
		authHandler = auth.NewAuthHandler(authService)
		authMiddleware = auth.NewAuthMiddleware(authService)
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, catalogService)
	calculationHandler := handlers.NewCalculationHandler(calculationService)
	complianceHandler := handlers.NewComplianceHandler(complianceService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	distanceHandler := handlers.NewDistanceHandler(distanceService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/v1/auth")
		{
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.GET("/validate", authMiddleware.RequireAuth(), authHandler.Validate)
			authGroup.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
		}
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	} else {
		v1.Use(func(c *gin.Context) {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication is not configured"})
		})
	}

	{
		calculations := v1.Group("/calculations")
		{
			calculations.POST("/duration", calculationHandler.Duration)
			calculations.POST("/earnings", calculationHandler.Earnings)
			calculations.POST("/shifts", calculationHandler.Shifts)
		}

		complianceGroup := v1.Group("/compliance")
		{
			complianceGroup.POST("/evaluate", complianceHandler.Evaluate)
			complianceGroup.GET("/me", complianceHandler.Me)
		}

		catalog := v1.Group("/catalog")
		{
			catalog.GET("", catalogHandler.List)
			catalog.GET("/:role", catalogHandler.GetRole)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/earnings", dashboardHandler.Earnings)
			dashboard.GET("/earnings/export", dashboardHandler.Export)
		}

		v1.GET("/distance", distanceHandler.Estimate)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}
