package auth

import (
	"fmt"
	"time"

	"joyjoy-locums-backend/internal/config"
)

// AuthConfig holds the Supabase settings needed to verify and refresh sessions
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret" json:"jwt_secret"`
	SupabaseURL    string        `yaml:"supabase_url" json:"supabase_url"`
	AnonKey        string        `yaml:"anon_key" json:"anon_key"`
	RefreshTimeout time.Duration `yaml:"refresh_timeout" json:"refresh_timeout"`
}

// NewAuthConfig derives the auth settings from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:      cfg.SupabaseJWTSecret,
		SupabaseURL:    cfg.SupabaseURL,
		AnonKey:        cfg.SupabaseAnonKey,
		RefreshTimeout: cfg.UpstreamTimeout(),
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	return nil
}

// CanRefresh reports whether sessions can be refreshed against Supabase
func (c *AuthConfig) CanRefresh() bool {
	return c.SupabaseURL != "" && c.AnonKey != ""
}
