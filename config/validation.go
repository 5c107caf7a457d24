package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration meets the requirements for the
// current environment. Development and test fall back to local defaults;
// production must be fully configured.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.AuthProviderURL == "" && cfg.AuthJWTSecret == "" {
		errors = append(errors, "either AUTH_PROVIDER_URL or AUTH_JWT_SECRET must be set")
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			errors = append(errors, "DB_PASSWORD is required in production")
		}
		if cfg.AuthProviderURL != "" && cfg.AuthAPIKey == "" {
			errors = append(errors, "AUTH_API_KEY is required when AUTH_PROVIDER_URL is set")
		}
		if cfg.S3Bucket == "" {
			errors = append(errors, "S3_BUCKET_NAME is required in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
