package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Email    EmailConfig
	Admin    AdminConfig
	LeetCode LeetCodeConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name    string
	Version string
	Debug   bool
	Port    string
	Host    string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	// AllowedOrigins is the explicit allow-list (localhost dev servers plus
	// the deployed frontend URL when set).
	AllowedOrigins []string
	// AllowedSuffix admits any origin ending with this suffix, used for
	// deployment-platform preview URLs.
	AllowedSuffix  string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// EmailConfig holds notification email configuration
type EmailConfig struct {
	Enabled   bool
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	// NotifyEmail receives the operator notification for each submission.
	NotifyEmail string
}

// AdminConfig holds optional admin authentication configuration.
// The message listing endpoint is only protected when Username is set.
type AdminConfig struct {
	Username           string
	SecretKey          string
	TokenExpiryMinutes int
}

// LeetCodeConfig holds the upstream stats endpoint configuration
type LeetCodeConfig struct {
	GraphQLURL string
}

var globalConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	origins := []string{
		"http://localhost:5173",
		"http://localhost:3000",
	}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		origins = append(origins, strings.TrimRight(frontend, "/"))
	}

	config := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "Portfolio API"),
			Version: getEnv("APP_VERSION", "1.0.0"),
			Debug:   getEnvAsBool("DEBUG", false),
			Port:    getEnv("PORT", "5000"),
			Host:    getEnv("HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", "sqlite:///./portfolio.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: origins,
			AllowedSuffix:  getEnv("ALLOWED_ORIGIN_SUFFIX", ".vercel.app"),
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
			MaxAge:         86400,
		},
		Email: EmailConfig{
			Enabled:     getEnvAsBool("EMAIL_ENABLED", false),
			SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:    getEnvAsInt("SMTP_PORT", 587),
			Username:    getEnv("SMTP_USERNAME", ""),
			Password:    getEnv("SMTP_PASSWORD", ""),
			FromEmail:   getEnv("EMAIL_FROM", "noreply@localhost"),
			FromName:    getEnv("EMAIL_FROM_NAME", "Portfolio"),
			NotifyEmail: getEnv("NOTIFY_EMAIL", ""),
		},
		Admin: AdminConfig{
			Username:           getEnv("ADMIN_USERNAME", ""),
			SecretKey:          getEnv("SECRET_KEY", ""),
			TokenExpiryMinutes: getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", 60),
		},
		LeetCode: LeetCodeConfig{
			GraphQLURL: getEnv("LEETCODE_GRAPHQL_URL", "https://leetcode.com/graphql"),
		},
	}

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	globalConfig = config
	return config, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.Admin.Username != "" && cfg.Admin.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY must be set when ADMIN_USERNAME is configured")
	}
	if cfg.Email.Enabled && cfg.Email.NotifyEmail == "" {
		return fmt.Errorf("NOTIFY_EMAIL must be set when EMAIL_ENABLED is true")
	}
	return nil
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		// Load default config if not loaded
		config, _ := Load()
		return config
	}
	return globalConfig
}

// Enabled reports whether admin authentication is configured.
func (c *AdminConfig) Enabled() bool {
	return c.Username != ""
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// IsPostgres checks if the database URL is for PostgreSQL
func (c *DatabaseConfig) IsPostgres() bool {
	return strings.HasPrefix(c.URL, "postgres://") || strings.HasPrefix(c.URL, "postgresql://")
}

// GetSQLitePath extracts the SQLite database path from the URL
func (c *DatabaseConfig) GetSQLitePath() string {
	if strings.HasPrefix(c.URL, "sqlite:///") {
		return strings.TrimPrefix(c.URL, "sqlite:///")
	}
	return c.URL
}
