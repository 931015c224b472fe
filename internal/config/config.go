package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Transport TransportConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	GinMode string
	// PublicBaseURL prefixes receipt and download links
	PublicBaseURL string
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret     string
	SessionTTL time.Duration
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// TransportConfig holds the simulated network settings
type TransportConfig struct {
	// LatencyScale multiplies every simulated delay; 0 disables them
	LatencyScale float64
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	ReminderCronExpression     string
	SessionSweepCronExpression string
	ReminderWindowDays         int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env file doesn't exist
		fmt.Println("No .env file found, using environment variables")
	}

	port := getEnv("PORT", "8080")
	config := &Config{
		Server: ServerConfig{
			Port:          port,
			GinMode:       getEnv("GIN_MODE", "debug"),
			PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", "your-secret-key"),
			SessionTTL: time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173,http://127.0.0.1:3000"),
		},
		Transport: TransportConfig{
			LatencyScale: getEnvAsFloat("LATENCY_SCALE", 1),
		},
		Scheduler: SchedulerConfig{
			ReminderCronExpression:     getEnv("REMINDER_CRON_EXPRESSION", "0 0 7 * * *"),
			SessionSweepCronExpression: getEnv("SESSION_SWEEP_CRON_EXPRESSION", "0 */10 * * * *"),
			ReminderWindowDays:         getEnvAsInt("REMINDER_WINDOW_DAYS", 14),
		},
	}

	if config.JWT.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}
	if config.Transport.LatencyScale < 0 {
		return nil, fmt.Errorf("LATENCY_SCALE must not be negative")
	}

	return config, nil
}

// Origins splits the allowed origins list
func (c *CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvAsFloat gets an environment variable as float with a fallback value
func getEnvAsFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
