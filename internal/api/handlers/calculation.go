package handlers

import (
	"net/http"

	"joyjoy-locums-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CalculationHandler handles shift arithmetic requests
type CalculationHandler struct {
	calculationService service.CalculationServiceInterface
}

// NewCalculationHandler creates a new calculation handler
func NewCalculationHandler(calculationService service.CalculationServiceInterface) *CalculationHandler {
	return &CalculationHandler{
		calculationService: calculationService,
	}
}

// Duration handles POST /calculations/duration
// @Summary Shift duration
// @Description Hours between two times of day. An end at or before the start runs past midnight.
// @Tags calculations
// @Accept json
// @Produce json
// @Param request body service.DurationRequest true "Start and end time (HH:MM)"
// @Success 200 {object} service.DurationResponse
// @Failure 400 {object} ErrorResponse "Invalid time"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /calculations/duration [post]
func (h *CalculationHandler) Duration(c *gin.Context) {
	var req service.DurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.calculationService.Duration(&req)
	if err != nil {
		respondError(c, err, "Failed to compute duration")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Earnings handles POST /calculations/earnings
// @Summary Shift earnings
// @Description Pay for a shift length at an hourly rate, rounded half-up to pence. A missing rate yields zero pay.
// @Tags calculations
// @Accept json
// @Produce json
// @Param request body service.EarningsRequest true "Duration in hours and hourly rate"
// @Success 200 {object} service.EarningsResponse
// @Failure 400 {object} ErrorResponse "Invalid rate or duration"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /calculations/earnings [post]
func (h *CalculationHandler) Earnings(c *gin.Context) {
	var req service.EarningsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.calculationService.Earnings(&req)
	if err != nil {
		respondError(c, err, "Failed to compute earnings")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Shifts handles POST /calculations/shifts
// @Summary Batch shift computation
// @Description Normalizes raw shifts, computes each one and summarises the valid ones. Invalid shifts are reported per item.
// @Tags calculations
// @Accept json
// @Produce json
// @Param request body service.ShiftBatchRequest true "Raw shifts"
// @Success 200 {object} service.ShiftBatchResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /calculations/shifts [post]
func (h *CalculationHandler) Shifts(c *gin.Context) {
	var req service.ShiftBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.calculationService.Shifts(&req)
	if err != nil {
		respondError(c, err, "Failed to compute shifts")
		return
	}

	c.JSON(http.StatusOK, resp)
}
