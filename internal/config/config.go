package config

import (
	"fmt"
	"time"
	// embedded zone database so SHIFT_TIMEZONE works in minimal containers
	_ "time/tzdata"

	"joyjoy-locums-backend/internal/shift"

	"github.com/spf13/viper"
)

// Catalog sources
const (
	CatalogSourceFile     = "file"
	CatalogSourceDatabase = "database"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration, only used by the database catalog source
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Requirement catalog
	CatalogSource  string `mapstructure:"CATALOG_SOURCE"`
	CatalogPath    string `mapstructure:"CATALOG_PATH"`
	CatalogVersion string `mapstructure:"CATALOG_VERSION"`

	PostcodesPath string `mapstructure:"POSTCODES_PATH"`

	// Shift arithmetic
	ShiftZeroLengthPolicy string `mapstructure:"SHIFT_ZERO_LENGTH_POLICY"`
	ShiftTimezone         string `mapstructure:"SHIFT_TIMEZONE"`

	// Marketplace REST API
	UpstreamBaseURL    string `mapstructure:"UPSTREAM_BASE_URL"`
	UpstreamTimeoutSec int    `mapstructure:"UPSTREAM_TIMEOUT_SEC"`

	// Supabase auth
	SupabaseURL       string `mapstructure:"SUPABASE_URL"`
	SupabaseAnonKey   string `mapstructure:"SUPABASE_ANON_KEY"`
	SupabaseJWTSecret string `mapstructure:"SUPABASE_JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "joyjoy_locums")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("CATALOG_SOURCE", CatalogSourceFile)
	viper.SetDefault("CATALOG_PATH", "config/catalog.yaml")
	viper.SetDefault("CATALOG_VERSION", "")
	viper.SetDefault("POSTCODES_PATH", "config/postcodes.yaml")

	viper.SetDefault("SHIFT_ZERO_LENGTH_POLICY", string(shift.DefaultZeroLengthPolicy))
	viper.SetDefault("SHIFT_TIMEZONE", "Europe/London")

	viper.SetDefault("UPSTREAM_BASE_URL", "")
	viper.SetDefault("UPSTREAM_TIMEOUT_SEC", 10)

	viper.SetDefault("SUPABASE_URL", "")
	viper.SetDefault("SUPABASE_ANON_KEY", "")
	// Local Supabase stacks sign with this well-known development secret
	viper.SetDefault("SUPABASE_JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"})
}

const defaultJWTSecret = "super-secret-jwt-token-with-at-least-32-characters-long"

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.SupabaseJWTSecret == "" || config.SupabaseJWTSecret == defaultJWTSecret {
			return fmt.Errorf("SUPABASE_JWT_SECRET must be set in production")
		}
	}

	if _, err := shift.ParseZeroLengthPolicy(config.ShiftZeroLengthPolicy); err != nil {
		return err
	}

	if _, err := time.LoadLocation(config.ShiftTimezone); err != nil {
		return fmt.Errorf("invalid SHIFT_TIMEZONE %q: %w", config.ShiftTimezone, err)
	}

	switch config.CatalogSource {
	case CatalogSourceFile:
		if config.CatalogPath == "" {
			return fmt.Errorf("CATALOG_PATH is required for the file catalog source")
		}
	case CatalogSourceDatabase:
		if config.DatabaseName == "" && config.DatabaseURL == "" {
			return fmt.Errorf("database name is required for the database catalog source")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", config.CatalogSource)
	}

	if config.UpstreamTimeoutSec < 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT_SEC must not be negative")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesDatabaseCatalog reports whether the requirement catalog is read from Postgres
func (c *Config) UsesDatabaseCatalog() bool {
	return c.CatalogSource == CatalogSourceDatabase
}

// ZeroLengthPolicy returns the configured policy for shifts whose start equals their end
func (c *Config) ZeroLengthPolicy() shift.ZeroLengthPolicy {
	p, err := shift.ParseZeroLengthPolicy(c.ShiftZeroLengthPolicy)
	if err != nil {
		return shift.DefaultZeroLengthPolicy
	}
	return p
}

// Location returns the timezone shift dates are interpreted in
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ShiftTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// UpstreamTimeout returns the per-request timeout for the marketplace API
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutSec) * time.Second
}
