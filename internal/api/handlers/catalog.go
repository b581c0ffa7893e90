package handlers

import (
	"net/http"

	"joyjoy-locums-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the requirement catalog
type CatalogHandler struct {
	catalogService service.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService service.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// List handles GET /catalog
// @Summary Requirement catalog
// @Description Every role's mandatory and supplementary document requirements
// @Tags catalog
// @Produce json
// @Success 200 {object} compliance.Catalog
// @Failure 503 {object} ErrorResponse "Catalog unavailable"
// @Security BearerAuth
// @Router /catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	catalog, err := h.catalogService.Current(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load requirement catalog")
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// GetRole handles GET /catalog/:role
// @Summary Requirements for a role
// @Tags catalog
// @Produce json
// @Param role path string true "Professional role" example(gp)
// @Success 200 {object} service.RoleCatalogResponse
// @Failure 404 {object} ErrorResponse "Unknown role"
// @Security BearerAuth
// @Router /catalog/{role} [get]
func (h *CatalogHandler) GetRole(c *gin.Context) {
	resp, err := h.catalogService.GetRole(c.Request.Context(), c.Param("role"))
	if err != nil {
		respondError(c, err, "Failed to load requirement catalog")
		return
	}

	c.JSON(http.StatusOK, resp)
}
