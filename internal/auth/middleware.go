package auth

import (
	"net/http"
	"strings"

	"joyjoy-locums-backend/internal/logger"
	"joyjoy-locums-backend/internal/session"

	"github.com/gin-gonic/gin"
)

// RefreshTokenHeader optionally carries the caller's refresh token so the
// gateway can renew an access token that expires mid-request.
const RefreshTokenHeader = "X-Refresh-Token"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token, then attaches the user's session to
// both the gin context and the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		sess := m.service.NewSession(tokenString, c.GetHeader(RefreshTokenHeader), claims)
		ctx := session.NewContext(c.Request.Context(), sess)
		ctx = logger.ContextWithUser(ctx, claims.UserID())
		c.Request = c.Request.WithContext(ctx)

		// Set user context
		c.Set("user_id", claims.UserID())
		c.Set("email", claims.Email)
		c.Set("auth_claims", claims)
		c.Set("session", sess)

		c.Next()
	}
}

// GetUserID is a helper function to extract the Supabase user id from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*session.Claims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*session.Claims)
	return authClaims, ok
}

// GetSession is a helper function to extract the caller's session from context
func GetSession(c *gin.Context) (*session.Session, bool) {
	sess, exists := c.Get("session")
	if !exists {
		return nil, false
	}

	s, ok := sess.(*session.Session)
	return s, ok
}
