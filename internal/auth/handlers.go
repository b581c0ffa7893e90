package auth

import (
	"net/http"

	apperrors "joyjoy-locums-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes session refresh, validation and logout
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Refresh handles token refresh
// @Summary Refresh authentication token
// @Description Exchange a Supabase refresh token for a new, verified token pair
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} AuthRefreshResponse "Successfully refreshed token"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Refresh token rejected"
// @Failure 502 {object} map[string]interface{} "Auth server unavailable"
// @Failure 503 {object} map[string]interface{} "Refresh not configured"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	refreshed, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case apperrors.IsConfiguration(err):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Token refresh is not available", "details": err.Error()})
		case apperrors.IsAuthentication(err):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token refresh failed", "details": err.Error()})
		case apperrors.IsUpstream(err):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Token refresh failed", "details": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, refreshed)
}

// Validate returns the caller's verified profile
// @Summary Validate JWT token
// @Description Validate the bearer token and return the caller's profile
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthValidateResponse "Token is valid"
// @Failure 401 {object} map[string]interface{} "Authentication required or token invalid"
// @Router /auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Profile: ProfileFromClaims(claims)})
}

// Logout invalidates the caller's session for the rest of the request.
// Tokens are stateless, so the client must also discard them.
// @Summary Logout user
// @Description Invalidate the caller's session
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthLogoutResponse "Successfully logged out"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	sess.Invalidate()
	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Logged out successfully"})
}
