package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Gate     GateConfig
	Sink     SinkConfig
	History  HistoryConfig
	Rollover RolloverConfig
	SMTP     SMTPConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int
	MinConns int
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// GateConfig holds the geofence and work-duration parameters.
type GateConfig struct {
	OfficeLatitude    float64
	OfficeLongitude   float64
	RadiusMeters      float64
	LunchDeductionMin int
}

// SinkConfig holds the external form endpoint and the mapping of
// logical record fields to the sink's opaque field identifiers.
type SinkConfig struct {
	URL      string
	FieldMap map[string]string
}

type HistoryConfig struct {
	URL string
}

// RolloverConfig names the policy for unclosed prior-day sessions.
type RolloverConfig struct {
	Policy        string // "reset" or "flag"
	AlertEmail    string
	SweepInterval string
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployed environments.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance_gate"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: dbMaxConns,
		MinConns: dbMinConns,
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Geofence configuration
	officeLat, err := strconv.ParseFloat(getEnv("OFFICE_LATITUDE", ""), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LATITUDE: %w", err)
	}
	officeLng, err := strconv.ParseFloat(getEnv("OFFICE_LONGITUDE", ""), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LONGITUDE: %w", err)
	}
	radius, err := strconv.ParseFloat(getEnv("GEOFENCE_RADIUS_METERS", "500"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOFENCE_RADIUS_METERS: %w", err)
	}
	lunch, err := strconv.Atoi(getEnv("LUNCH_DEDUCTION_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid LUNCH_DEDUCTION_MINUTES: %w", err)
	}

	config.Gate = GateConfig{
		OfficeLatitude:    officeLat,
		OfficeLongitude:   officeLng,
		RadiusMeters:      radius,
		LunchDeductionMin: lunch,
	}

	// Record sink configuration
	config.Sink = SinkConfig{
		URL:      getEnv("SINK_URL", ""),
		FieldMap: getEnvMap("SINK_FIELD_MAP"),
	}

	config.History = HistoryConfig{
		URL: getEnv("HISTORY_URL", ""),
	}

	config.Rollover = RolloverConfig{
		Policy:        getEnv("ROLLOVER_POLICY", "reset"),
		AlertEmail:    getEnv("ROLLOVER_ALERT_EMAIL", ""),
		SweepInterval: getEnv("ROLLOVER_SWEEP_INTERVAL", "1h"),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		User:     getEnv("SMTP_USER", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
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
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Sink.URL == "" {
		return fmt.Errorf("SINK_URL is required")
	}
	if c.Gate.RadiusMeters <= 0 {
		return fmt.Errorf("GEOFENCE_RADIUS_METERS must be positive")
	}
	if c.Gate.LunchDeductionMin < 0 {
		return fmt.Errorf("LUNCH_DEDUCTION_MINUTES must not be negative")
	}
	if c.Rollover.Policy != "reset" && c.Rollover.Policy != "flag" {
		return fmt.Errorf("ROLLOVER_POLICY must be one of: reset, flag")
	}
	if c.Rollover.Policy == "flag" && c.Rollover.AlertEmail != "" && c.SMTP.Host == "" {
		return fmt.Errorf("SMTP_HOST is required when ROLLOVER_ALERT_EMAIL is set")
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

// getEnvMap parses "logical=external,logical=external" pairs.
func getEnvMap(env string) map[string]string {
	value := getEnv(env, "")
	result := make(map[string]string)
	if value == "" {
		return result
	}
	for _, pair := range strings.Split(value, ",") {
		kv := strings.SplitN(strings.TrimSpace(pair), "=", 2)
		if len(kv) == 2 && kv[0] != "" && kv[1] != "" {
			result[kv[0]] = kv[1]
		}
	}
	return result
}
