package config

import (
	"fmt"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the fields the server cannot run without.
func ValidateConfig(cfg *Config) error {
	if cfg.JWTSecret == "" {
		if IsProduction() {
			return ValidationError{Field: "JWT_SECRET", Message: "is required"}
		}
		// Development fallback so the server starts without secrets.
		cfg.JWTSecret = "dev-secret"
	}
	if cfg.DBHost == "" {
		return ValidationError{Field: "DB_HOST", Message: "is required"}
	}
	if cfg.DBName == "" {
		return ValidationError{Field: "DB_NAME", Message: "is required"}
	}
	if IsProduction() && cfg.DBPassword == "" {
		return ValidationError{Field: "DB_PASSWORD", Message: "is required in production"}
	}
	return nil
}
