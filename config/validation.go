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

// ValidateConfig checks that the configuration is complete enough to serve
// traffic. Infrastructure addresses carry defaults, so validation focuses on
// the values that have no sensible fallback: the provider credentials, which
// every recipe lookup may need once the store runs short.
func ValidateConfig(cfg *Config) error {
	var errors []string

	required := []struct {
		field string
		value string
	}{
		{"SERVER_PORT", cfg.ServerPort},
		{"DB_HOST", cfg.DBHost},
		{"DB_PORT", cfg.DBPort},
		{"DB_USER", cfg.DBUser},
		{"DB_NAME", cfg.DBName},
		{"PROVIDER_APP_ID", cfg.ProviderAppID},
		{"PROVIDER_APP_KEY", cfg.ProviderAppKey},
	}
	for _, req := range required {
		if req.value == "" {
			errors = append(errors, ValidationError{Field: req.field, Message: "is required"}.Error())
		}
	}

	if IsProduction() && cfg.DBSSLMode == "disable" {
		errors = append(errors, ValidationError{Field: "DB_SSL_MODE", Message: "must not be disable in production"}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}

	return nil
}
