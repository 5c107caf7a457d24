package config

import (
	"fmt"
	"os"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Identity provider configuration
	AuthProviderURL string // base URL of the external identity provider
	AuthAPIKey      string // anon/service key sent on provider calls
	AuthJWTSecret   string // optional; enables local token verification

	// Object store configuration
	S3Bucket  string
	AWSRegion string

	// Redis configuration (optional; enables forum write rate limiting)
	RedisURL string

	// CORS
	ClientURL string
}

// LoadConfig creates a new Config instance with values from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "portfolli"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		AuthProviderURL: os.Getenv("AUTH_PROVIDER_URL"),
		AuthAPIKey:      os.Getenv("AUTH_API_KEY"),
		AuthJWTSecret:   os.Getenv("AUTH_JWT_SECRET"),

		S3Bucket:  getEnv("S3_BUCKET_NAME", "portfolli-certificates"),
		AWSRegion: getEnv("AWS_REGION", "us-east-1"),

		RedisURL: os.Getenv("REDIS_URL"),

		ClientURL: getEnv("CLIENT_URL", "http://localhost:5173"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DSN builds the postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
