package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration. Redis is optional; when neither RedisURL nor
	// REDIS_HOST resolve to a reachable server the provider cache is skipped.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Recipe provider configuration
	ProviderBaseURL  string
	ProviderAppID    string
	ProviderAppKey   string
	ProviderTimeout  time.Duration
	ProviderCacheTTL time.Duration

	// Document storage configuration
	S3Bucket  string
	AWSRegion string
}

// LoadConfig creates a new Config instance from the environment. A .env file
// in the working directory is honored when present so local runs do not need
// every variable exported.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "mealfolio"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisURL:      getEnv("REDIS_URL", ""),

		ProviderBaseURL: getEnv("PROVIDER_BASE_URL", "https://api.edamam.com/api/recipes/v2"),
		ProviderAppID:   getEnv("PROVIDER_APP_ID", ""),
		ProviderAppKey:  getEnv("PROVIDER_APP_KEY", ""),

		S3Bucket:  getEnv("S3_BUCKET_NAME", "mealfolio-documents"),
		AWSRegion: getEnv("AWS_REGION", "us-east-1"),
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB value: %w", err)
	}
	cfg.RedisDB = redisDB

	cfg.ProviderTimeout, err = time.ParseDuration(getEnv("PROVIDER_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT value: %w", err)
	}

	cfg.ProviderCacheTTL, err = time.ParseDuration(getEnv("PROVIDER_CACHE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROVIDER_CACHE_TTL value: %w", err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable or the fallback when
// the variable is unset or empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
