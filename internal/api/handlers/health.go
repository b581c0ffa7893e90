package handlers

import (
	"context"
	"net/http"
	"time"

	"joyjoy-locums-backend/internal/database"
	"joyjoy-locums-backend/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// HealthHandler handles health check endpoints
type HealthHandler struct {
	// db is nil when the catalog is read from a file
	db       *gorm.DB
	catalogs service.CatalogServiceInterface
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, catalogs service.CatalogServiceInterface) *HealthHandler {
	return &HealthHandler{
		db:       db,
		catalogs: catalogs,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

func (h *HealthHandler) check(ctx context.Context) (bool, map[string]string) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	healthy := true
	services := make(map[string]string)

	if h.db != nil {
		if err := database.Ping(ctx, h.db); err != nil {
			healthy = false
			services["database"] = "error: " + err.Error()
		} else {
			services["database"] = "healthy"
		}
	}

	if c, err := h.catalogs.Current(ctx); err != nil {
		healthy = false
		services["catalog"] = "error: " + err.Error()
	} else {
		services["catalog"] = "version " + c.Version
	}

	return healthy, services
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status including the requirement catalog and, when used, the database
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	healthy, services := h.check(c.Request.Context())
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
		Services:  services,
	}

	statusCode := http.StatusOK
	if !healthy {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ready, services := h.check(c.Request.Context())

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
