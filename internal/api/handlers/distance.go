package handlers

import (
	"net/http"

	"joyjoy-locums-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DistanceHandler estimates travel distance between postcodes
type DistanceHandler struct {
	distanceService service.DistanceServiceInterface
}

// NewDistanceHandler creates a new distance handler
func NewDistanceHandler(distanceService service.DistanceServiceInterface) *DistanceHandler {
	return &DistanceHandler{
		distanceService: distanceService,
	}
}

// Estimate handles GET /distance
// @Summary Postcode distance
// @Description Straight-line miles between the centres of two UK postcode districts
// @Tags distance
// @Produce json
// @Param from query string true "Origin postcode" example(LS1 4AP)
// @Param to query string true "Destination postcode" example(YO1 7HH)
// @Success 200 {object} geo.Estimate
// @Failure 400 {object} ErrorResponse "Invalid postcode"
// @Failure 404 {object} ErrorResponse "Unknown postcode district"
// @Security BearerAuth
// @Router /distance [get]
func (h *DistanceHandler) Estimate(c *gin.Context) {
	estimate, err := h.distanceService.Estimate(c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err, "Failed to estimate distance")
		return
	}

	c.JSON(http.StatusOK, estimate)
}
