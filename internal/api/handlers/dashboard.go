package handlers

import (
	"fmt"
	"net/http"

	"joyjoy-locums-backend/internal/auth"
	"joyjoy-locums-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DashboardHandler serves the locum earnings dashboard
type DashboardHandler struct {
	dashboardService service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Earnings handles GET /dashboard/earnings
// @Summary My earnings
// @Description Totals the caller's marketplace shifts. Shifts that fail validation are listed with their errors and left out of the totals.
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.EarningsDashboardResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Marketplace error"
// @Security BearerAuth
// @Router /dashboard/earnings [get]
func (h *DashboardHandler) Earnings(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.dashboardService.Earnings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load earnings")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Export handles GET /dashboard/earnings/export
// @Summary Export my earnings
// @Description Earnings statement as an Excel workbook
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Earnings statement"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Marketplace error"
// @Security BearerAuth
// @Router /dashboard/earnings/export [get]
func (h *DashboardHandler) Export(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	buf, filename, err := h.dashboardService.ExportEarnings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to export earnings")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
