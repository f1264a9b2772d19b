package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int
	MinConns    int
	PingTimeout time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AttendanceConfig holds tuning for the clock-in write path.
type AttendanceConfig struct {
	// GracePeriodMinutes is how long after shift start a clock-in still
	// counts as on time.
	GracePeriodMinutes int
}

func Load() (*Config, error) {
	// Missing .env is fine; variables may come from the environment itself.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}
	pingTimeoutSecs, err := strconv.Atoi(getEnv("DB_PING_TIMEOUT_SECONDS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PING_TIMEOUT_SECONDS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:        getEnv("DB_HOST", "localhost"),
		Port:        dbPort,
		User:        getEnv("DB_USER", "postgres"),
		Password:    getEnv("DB_PASSWORD", ""),
		Name:        getEnv("DB_NAME", "hris-attendance"),
		SSLMode:     getEnv("DB_SSL_MODE", "disable"),
		MaxConns:    maxConns,
		MinConns:    minConns,
		PingTimeout: time.Duration(pingTimeoutSecs) * time.Second,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	graceMinutes, err := strconv.Atoi(getEnv("ATTENDANCE_GRACE_PERIOD_MINUTES", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_GRACE_PERIOD_MINUTES: %w", err)
	}

	config.Attendance = AttendanceConfig{
		GracePeriodMinutes: graceMinutes,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Database.MaxConns <= 0 || c.Database.MinConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS and DB_MIN_CONNS must be positive")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	if c.Database.PingTimeout <= 0 {
		return fmt.Errorf("DB_PING_TIMEOUT_SECONDS must be positive")
	}
	if c.Attendance.GracePeriodMinutes < 0 {
		return fmt.Errorf("ATTENDANCE_GRACE_PERIOD_MINUTES must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
