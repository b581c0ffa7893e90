package auth

import (
	"context"
	"fmt"
	"time"

	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService verifies Supabase access tokens and builds per-request sessions
type AuthService struct {
	config    *AuthConfig
	refresher session.Refresher
}

// UserProfile is the caller identity exposed to the frontend
type UserProfile struct {
	ID               string `json:"id" example:"4f1c0a4e-2b9d-4a57-9d7e-0c1f6f2a9e11"`
	Email            string `json:"email" example:"locum@example.com"`
	ProfessionalRole string `json:"professionalRole,omitempty" example:"gp"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthRefreshResponse represents the response from the refresh endpoint
type AuthRefreshResponse struct {
	AccessToken      string      `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType        string      `json:"tokenType" example:"bearer"`
	ExpiresInSeconds int64       `json:"expiresInSeconds" example:"3600"`
	RefreshToken     string      `json:"refreshToken"`
	Profile          UserProfile `json:"profile"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid   bool        `json:"valid" example:"true"`
	Profile UserProfile `json:"profile"`
}

// NewAuthService creates a new authentication service. refresher may be nil
// when the Supabase project URL or anon key is not configured.
func NewAuthService(config *AuthConfig, refresher session.Refresher) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, refresher: refresher}, nil
}

// ValidateJWT validates and parses a Supabase access token
func (s *AuthService) ValidateJWT(tokenString string) (*session.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &session.Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*session.Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return claims, nil
}

// NewSession wraps a verified access token in a session that can refresh itself
func (s *AuthService) NewSession(accessToken, refreshToken string, claims *session.Claims) *session.Session {
	return session.FromClaims(accessToken, refreshToken, claims, s.refresher)
}

// RefreshToken exchanges a refresh token for a new verified token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthRefreshResponse, error) {
	if s.refresher == nil {
		return nil, apperrors.ErrRefreshNotConfigured
	}

	sess := session.FromClaims("", refreshToken, nil, s.refresher)
	tok, err := sess.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	claims, err := s.ValidateJWT(tok.AccessToken)
	if err != nil {
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("refreshed token failed verification: %v", err))
	}

	var expiresIn int64
	if !tok.Expiry.IsZero() {
		expiresIn = int64(time.Until(tok.Expiry).Seconds())
	}
	return &AuthRefreshResponse{
		AccessToken:      tok.AccessToken,
		TokenType:        "bearer",
		ExpiresInSeconds: expiresIn,
		RefreshToken:     tok.RefreshToken,
		Profile:          ProfileFromClaims(claims),
	}, nil
}

// ProfileFromClaims builds the user profile carried by a token
func ProfileFromClaims(claims *session.Claims) UserProfile {
	return UserProfile{
		ID:               claims.UserID(),
		Email:            claims.Email,
		ProfessionalRole: claims.ProfessionalRole(),
	}
}
