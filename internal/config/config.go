package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	AppMode        string
	Port           string
	AllowedOrigins string
	Database       DatabaseConfig
	JWT            JWTConfig
	RateLimit      RateLimitConfig
	Cron           CronConfig
	Seed           SeedConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret     string
	ExpiryDays int
}

// RateLimitConfig holds per-IP request limits. Zero disables a limiter.
type RateLimitConfig struct {
	PerMinute     int
	AuthPerMinute int
}

// CronConfig holds scheduler configuration
type CronConfig struct {
	DailySummary string
}

// SeedConfig holds credentials for the seeded admin account
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	setDefaults(viper.GetViper())
	viper.AutomaticEnv()

	return FromViper(viper.GetViper())
}

// FromViper builds a Config from an already populated viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	// Trim spaces for Windows compatibility
	appMode := strings.TrimSpace(v.GetString("APP_MODE"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	driver := strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER")))
	if driver != "mysql" && driver != "postgres" {
		return nil, fmt.Errorf("invalid DB_DRIVER: '%s' (must be 'mysql' or 'postgres')", driver)
	}

	secret := v.GetString("JWT_SECRET")
	if appMode == "prod" && (secret == "" || secret == defaultJWTSecret) {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod mode")
	}

	expiryDays := v.GetInt("JWT_EXPIRY_DAYS")
	if expiryDays <= 0 {
		expiryDays = 7
	}

	config := &Config{
		AppMode:        appMode,
		Port:           v.GetString("PORT"),
		AllowedOrigins: strings.TrimSpace(v.GetString("ALLOWED_ORIGINS")),
		Database: DatabaseConfig{
			Driver:   driver,
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			Secret:     secret,
			ExpiryDays: expiryDays,
		},
		RateLimit: RateLimitConfig{
			PerMinute:     v.GetInt("RATE_LIMIT_PER_MINUTE"),
			AuthPerMinute: v.GetInt("AUTH_RATE_LIMIT_PER_MINUTE"),
		},
		Cron: CronConfig{
			DailySummary: strings.TrimSpace(v.GetString("DAILY_SUMMARY_CRON")),
		},
		Seed: SeedConfig{
			AdminEmail:    v.GetString("SEED_ADMIN_EMAIL"),
			AdminPassword: v.GetString("SEED_ADMIN_PASSWORD"),
			AdminName:     v.GetString("SEED_ADMIN_NAME"),
		},
	}

	if config.Database.Port == "" {
		config.Database.Port = defaultDBPort(driver)
	}

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

const defaultJWTSecret = "dev-secret"

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_MODE", "dev")
	v.SetDefault("PORT", "4000")
	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_NAME", "salestrack")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DAYS", 7)
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 300)
	v.SetDefault("AUTH_RATE_LIMIT_PER_MINUTE", 10)
	v.SetDefault("DAILY_SUMMARY_CRON", "5 0 * * *")
	v.SetDefault("SEED_ADMIN_EMAIL", "admin@example.com")
	v.SetDefault("SEED_ADMIN_PASSWORD", "Admin@123")
	v.SetDefault("SEED_ADMIN_NAME", "Super Admin")
}

func defaultDBPort(driver string) string {
	if driver == "postgres" {
		return "5432"
	}
	return "3306"
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	if c.AllowedOrigins == "" {
		return "*"
	}
	return c.AllowedOrigins
}
