package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/franciscosanchezn/pizza-shop-api/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Database configuration
	Database database.DatabaseConfig `json:"-"`

	// Logging configuration
	LogLevel       string `json:"log_level"`
	LogFile        string `json:"log_file"`
	LogMaxSizeMB   int    `json:"log_max_size_mb"`
	LogMaxBackups  int    `json:"log_max_backups"`
	LogMaxAgeDays  int    `json:"log_max_age_days"`
	LogCompression bool   `json:"log_compression"`

	// Feature toggles
	MetricsEnabled bool `json:"metrics_enabled"`
	SwaggerEnabled bool `json:"swagger_enabled"`
}

// Address returns the host:port the server binds to
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, Database: %s, LogLevel: %s, LogFile: %s, MetricsEnabled: %t, SwaggerEnabled: %t}",
		c.Environment, c.Port, c.Host, c.Database.String(), c.LogLevel, c.LogFile, c.MetricsEnabled, c.SwaggerEnabled)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any variable holds an invalid value
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT: %d is out of range", port)
	}

	driver := GetEnvWithDefault("DB_DRIVER", "sqlite")
	switch driver {
	case "sqlite", "postgres", "postgresql":
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q (supported: sqlite, postgres)", driver)
	}

	environment := GetEnvWithDefault("APP_ENV", "development")
	// empty leaves the level to APP_ENV
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel != "" {
		if _, err := logrus.ParseLevel(logLevel); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	config := &Config{
		Environment: environment,
		Port:        port,
		Host:        GetEnvWithDefault("APP_HOST", "127.0.0.1"),
		Database: database.DatabaseConfig{
			Driver:   driver,
			Host:     GetEnvWithDefault("DB_HOST", "localhost"),
			Port:     GetEnvWithDefault("DB_PORT", "5432"),
			User:     GetEnvWithDefault("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     GetEnvWithDefault("DB_NAME", "pizzas"),
			SSLMode:  GetEnvWithDefault("DB_SSLMODE", "disable"),
			Path:     GetEnvWithDefault("DB_PATH", "pizzas.sqlite"),
			Debug:    logLevel == "debug" || logLevel == "trace",
		},
		LogLevel:       logLevel,
		LogFile:        os.Getenv("LOG_FILE"),
		LogMaxSizeMB:   GetEnvAsType("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups:  GetEnvAsType("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays:  GetEnvAsType("LOG_MAX_AGE_DAYS", 28),
		LogCompression: GetEnvAsType("LOG_COMPRESS", false),
		MetricsEnabled: GetEnvAsType("METRICS_ENABLED", true),
		SwaggerEnabled: GetEnvAsType("SWAGGER_ENABLED", true),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
