package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage driver names accepted by STORAGE_DRIVER
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Storage backend selection and database settings
	Storage StorageConfig

	// Seed dataset settings
	Seed SeedConfig

	// Popularity ranking weights
	Popularity PopularityConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// StorageConfig selects the storage backend. The in-memory store is the
// default; "postgres" switches to the database-backed repositories.
type StorageConfig struct {
	Driver   string
	Database DatabaseConfig
}

// DatabaseConfig holds database connection settings for the postgres driver
type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// SeedConfig holds seed loader settings. File optionally points at a YAML
// dataset replacing the embedded one; Skip disables seeding entirely.
type SeedConfig struct {
	File string
	Skip bool
}

// PopularityConfig holds the weights of the popularity score:
// view_weight*views + comment_weight*comments + share_weight*shares
type PopularityConfig struct {
	ViewWeight    float64
	CommentWeight float64
	ShareWeight   float64
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", DriverMemory),
			Database: DatabaseConfig{
				Host:         getEnv("DB_HOST", "localhost"),
				Port:         getEnv("DB_PORT", "5432"),
				User:         getEnv("DB_USER", "postgres"),
				Password:     getEnv("DB_PASSWORD", "postgres"),
				Name:         getEnv("DB_NAME", "news_portal"),
				SSLMode:      getEnv("DB_SSLMODE", "disable"),
				MaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
				MaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),
				MaxLifetime:  getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
			},
		},
		Seed: SeedConfig{
			File: getEnv("SEED_FILE", ""),
			Skip: getBoolEnv("SEED_SKIP", false),
		},
		Popularity: PopularityConfig{
			ViewWeight:    getFloatEnv("POPULARITY_VIEW_WEIGHT", 1.0),
			CommentWeight: getFloatEnv("POPULARITY_COMMENT_WEIGHT", 2.0),
			ShareWeight:   getFloatEnv("POPULARITY_SHARE_WEIGHT", 3.0),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Storage.Driver != DriverMemory && c.Storage.Driver != DriverPostgres {
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q", DriverMemory, DriverPostgres)
	}
	if c.Storage.Driver == DriverPostgres {
		if c.Storage.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for the postgres driver")
		}
		if c.Storage.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required for the postgres driver")
		}
	}
	if c.Popularity.ViewWeight < 0 || c.Popularity.CommentWeight < 0 || c.Popularity.ShareWeight < 0 {
		return fmt.Errorf("popularity weights must not be negative")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

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

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
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
