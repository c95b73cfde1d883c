package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"bank-reconciliation/internal/matching"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Matching MatchingConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// MatchingConfig carries the tunable parameters of the matching engine.
// Values are validated when converted via ToMatchingConfig.
// AmountTolerancePercent is a fraction, same as the engine field it
// overrides: 0.05 means 5%.
type MatchingConfig struct {
	Profile                string
	DateToleranceDays      int
	AmountTolerancePercent float64
	HighConfidence         float64
	MediumConfidence       float64
	LowConfidence          float64
	MaxMatches             int
	PersistAutoMatches     bool
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "reconciliation_user"),
			Password:        getEnv("DB_PASSWORD", "reconciliation_password"),
			Name:            getEnv("DB_NAME", "reconciliation_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Matching: MatchingConfig{
			Profile:                getEnv("MATCHING_PROFILE", "default"),
			DateToleranceDays:      getIntEnv("MATCHING_DATE_TOLERANCE_DAYS", -1),
			AmountTolerancePercent: getFloatEnv("MATCHING_AMOUNT_TOLERANCE_PERCENT", -1),
			HighConfidence:         getFloatEnv("MATCHING_HIGH_CONFIDENCE", -1),
			MediumConfidence:       getFloatEnv("MATCHING_MEDIUM_CONFIDENCE", -1),
			LowConfidence:          getFloatEnv("MATCHING_LOW_CONFIDENCE", -1),
			MaxMatches:             getIntEnv("MATCHING_MAX_MATCHES", -1),
			PersistAutoMatches:     getBoolEnv("MATCHING_PERSIST_AUTO_MATCHES", true),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the database connection string in URL form, as expected by the
// migration runner.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// ToMatchingConfig resolves the configured profile and applies any explicit
// overrides on top of it. Negative values mean "not set" and keep the
// profile's defaults.
func (c *MatchingConfig) ToMatchingConfig() (matching.Config, error) {
	var cfg matching.Config

	switch c.Profile {
	case "", "default":
		cfg = matching.DefaultConfig()
	case "strict":
		cfg = matching.StrictConfig()
	case "relaxed":
		cfg = matching.RelaxedConfig()
	default:
		return matching.Config{}, fmt.Errorf("unknown matching profile %q", c.Profile)
	}

	if c.DateToleranceDays >= 0 {
		cfg.DateToleranceDays = c.DateToleranceDays
	}
	if c.AmountTolerancePercent >= 0 {
		cfg.AmountTolerancePercent = c.AmountTolerancePercent
	}
	if c.HighConfidence >= 0 {
		cfg.HighConfidence = c.HighConfidence
	}
	if c.MediumConfidence >= 0 {
		cfg.MediumConfidence = c.MediumConfidence
	}
	if c.LowConfidence >= 0 {
		cfg.LowConfidence = c.LowConfidence
	}
	if c.MaxMatches >= 0 {
		cfg.MaxMatches = c.MaxMatches
	}

	if err := cfg.Validate(); err != nil {
		return matching.Config{}, fmt.Errorf("invalid matching configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		} else {
			log.Println("INFO: CORS_ALLOW_ORIGINS not set, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	// Split by comma and trim whitespace
	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	log.Printf("CORS allowed origins configured: %v", origins)
	return origins
}
