package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration for the payload
// conformance checker. Values come from environment variables with
// sensible defaults; a .env file in the working directory is loaded
// first when present.
//
// Environment Variables:
// Checker Configuration:
// - AGUI_PAYLOAD_DIR: Directory holding captured RunAgentInput payload files (required)
// - AGUI_DB_PATH: SQLite database recording validation results (default: ./data/agui-checker.db)
// - AGUI_CRON_EXPR: Cron schedule for periodic re-scans; empty runs a single scan
// - AGUI_CONCURRENCY: Parallel validation workers (default: 4)
//
// Logging Configuration:
// - LOG_LEVEL: debug, info, warn, error or fatal (default: info)
// - LOG_FILE: Log file path; empty logs to stdout
type Config struct {
	// Checker Configuration
	Checker CheckerConfig `json:"checker"`

	// Logging Configuration
	Log LogConfig `json:"log"`
}

// CheckerConfig holds the configuration for the payload checker
type CheckerConfig struct {
	PayloadDir  string `json:"payload_dir"`
	DBPath      string `json:"db_path"`
	CronExpr    string `json:"cron_expr"`
	Concurrency int    `json:"concurrency"` // Parallel validation workers
}

// LogConfig holds the logging configuration
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// Option is a function type for configuring Config
type Option func(*Config)

// New loads the .env file when present and builds a Config from the
// environment.
func New(opts ...Option) (*Config, error) {
	_ = godotenv.Load(".env")
	return NewFromEnv(opts...)
}

// NewFromEnv creates a new Config instance with values from environment
// variables and options
func NewFromEnv(opts ...Option) (*Config, error) {
	config := &Config{
		Checker: CheckerConfig{
			PayloadDir:  getEnvString("AGUI_PAYLOAD_DIR", ""),
			DBPath:      getEnvString("AGUI_DB_PATH", "./data/agui-checker.db"),
			CronExpr:    getEnvString("AGUI_CRON_EXPR", ""),
			Concurrency: getEnvInt("AGUI_CONCURRENCY", 4),
		},
		Log: LogConfig{
			Level: getEnvString("LOG_LEVEL", "info"),
			File:  getEnvString("LOG_FILE", ""),
		},
	}

	// Apply custom options
	for _, opt := range opts {
		opt(config)
	}

	// Validate required configuration
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks if all required configuration is properly set
func (c *Config) validate() error {
	if c.Checker.PayloadDir == "" {
		return fmt.Errorf("AGUI_PAYLOAD_DIR is required")
	}
	if c.Checker.Concurrency < 1 {
		return fmt.Errorf("AGUI_CONCURRENCY must be at least 1")
	}
	return nil
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
