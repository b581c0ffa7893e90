package handlers

import (
	"net/http"
	"strings"

	"joyjoy-locums-backend/internal/auth"
	"joyjoy-locums-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ComplianceHandler handles compliance evaluation requests
type ComplianceHandler struct {
	complianceService service.ComplianceServiceInterface
}

// NewComplianceHandler creates a new compliance handler
func NewComplianceHandler(complianceService service.ComplianceServiceInterface) *ComplianceHandler {
	return &ComplianceHandler{
		complianceService: complianceService,
	}
}

// Evaluate handles POST /compliance/evaluate
// @Summary Evaluate documents
// @Description Mandatory and supplementary compliance of the given documents for a professional role
// @Tags compliance
// @Accept json
// @Produce json
// @Param request body service.EvaluateRequest true "Role and documents"
// @Success 200 {object} service.ComplianceResponse
// @Failure 400 {object} ErrorResponse "Invalid documents"
// @Failure 404 {object} ErrorResponse "Unknown role"
// @Security BearerAuth
// @Router /compliance/evaluate [post]
func (h *ComplianceHandler) Evaluate(c *gin.Context) {
	var req service.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.complianceService.Evaluate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to evaluate compliance")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /compliance/me
// @Summary My compliance
// @Description Reads the caller's documents from the marketplace and evaluates them. The role comes from the token's user metadata unless overridden.
// @Tags compliance
// @Produce json
// @Param role query string false "Professional role, overrides the profile"
// @Success 200 {object} service.ComplianceResponse
// @Failure 400 {object} ErrorResponse "No role"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Marketplace error"
// @Security BearerAuth
// @Router /compliance/me [get]
func (h *ComplianceHandler) Me(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	role := strings.TrimSpace(c.Query("role"))
	if role == "" {
		if claims, ok := auth.GetAuthClaims(c); ok {
			role = claims.ProfessionalRole()
		}
	}

	resp, err := h.complianceService.EvaluateForUser(c.Request.Context(), userID, role)
	if err != nil {
		respondError(c, err, "Failed to evaluate compliance")
		return
	}

	c.JSON(http.StatusOK, resp)
}
