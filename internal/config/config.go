package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string

	// Backend API (knowledge base + prospect persistence)
	BackendBaseURL string
	BackendTimeout time.Duration

	// Traffic analytics provider (Apify-backed scraper)
	AnalyticsAPIKey  string
	AnalyticsBaseURL string
	AnalyticsTimeout time.Duration

	// Assistant (LLM)
	OpenAIAPIKey string
	OpenAIModel  string

	// Business estimate assumptions (overridable per deployment)
	ConversionRatePercent float64
	AverageOrderValue     float64

	// Background Workers
	WorkerCount int

	// CORS
	AllowedOrigins []string

	// Sentry
	SentryDSN string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		Environment:           getEnv("ENVIRONMENT", "development"),
		BackendBaseURL:        getEnv("BACKEND_URL", "http://localhost:5000/api"),
		BackendTimeout:        time.Duration(getEnvAsInt("BACKEND_TIMEOUT_MS", 10000)) * time.Millisecond,
		AnalyticsAPIKey:       getEnv("APIFY_TOKEN", ""),
		AnalyticsBaseURL:      getEnv("ANALYTICS_BASE_URL", "https://api.apify.com"),
		AnalyticsTimeout:      time.Duration(getEnvAsInt("ANALYTICS_TIMEOUT_MS", 90000)) * time.Millisecond,
		OpenAIAPIKey:          getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:           getEnv("OPENAI_MODEL", "gpt-4o"),
		ConversionRatePercent: getEnvAsFloat("CONVERSION_RATE_PERCENT", 2.0),
		AverageOrderValue:     getEnvAsFloat("AVERAGE_ORDER_VALUE", 75),
		WorkerCount:           getEnvAsInt("WORKER_COUNT", 5),
		AllowedOrigins:        getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		SentryDSN:             getEnv("SENTRY_DSN", ""),
	}

	// Validate required configuration
	if cfg.AnalyticsAPIKey == "" && cfg.Environment == "production" {
		return nil, fmt.Errorf("APIFY_TOKEN is required in production")
	}

	if cfg.ConversionRatePercent < 0 {
		return nil, fmt.Errorf("CONVERSION_RATE_PERCENT cannot be negative")
	}
	if cfg.AverageOrderValue < 0 {
		return nil, fmt.Errorf("AVERAGE_ORDER_VALUE cannot be negative")
	}

	return cfg, nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat reads an environment variable as float64
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice reads an environment variable as comma-separated slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
