package config

import (
	"errors"
	"fmt"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// validateConfig checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
func validateConfig(cfg *Config) error {
	var errs []error

	if cfg.Server.Addr == "" {
		errs = append(errs, &ValidationError{
			Field:   "server.addr",
			Value:   cfg.Server.Addr,
			Message: "must not be empty",
		})
	}

	if cfg.Policy.SMSThreshold < 0 || cfg.Policy.SMSThreshold > 1 {
		errs = append(errs, &ValidationError{
			Field:   "policy.sms_threshold",
			Value:   cfg.Policy.SMSThreshold,
			Message: "must be in [0, 1]",
		})
	}

	if cfg.Policy.CallThreshold < 0 || cfg.Policy.CallThreshold > 1 {
		errs = append(errs, &ValidationError{
			Field:   "policy.call_threshold",
			Value:   cfg.Policy.CallThreshold,
			Message: "must be in [0, 1]",
		})
	}

	if cfg.Policy.CallThreshold < cfg.Policy.SMSThreshold {
		errs = append(errs, &ValidationError{
			Field:   "policy.call_threshold",
			Value:   cfg.Policy.CallThreshold,
			Message: "must be at least sms_threshold",
		})
	}

	switch cfg.Storage.Driver {
	case "", "sqlite", "postgres":
		// Valid
	default:
		errs = append(errs, &ValidationError{
			Field:   "storage.driver",
			Value:   cfg.Storage.Driver,
			Message: "must be 'postgres', 'sqlite', or empty",
		})
	}

	if cfg.Storage.Driver == "postgres" && cfg.Storage.DSN == "" {
		errs = append(errs, &ValidationError{
			Field:   "storage.dsn",
			Value:   cfg.Storage.DSN,
			Message: "required for postgres driver",
		})
	}

	if cfg.Storage.Driver == "sqlite" && cfg.Storage.Path == "" {
		errs = append(errs, &ValidationError{
			Field:   "storage.path",
			Value:   cfg.Storage.Path,
			Message: "required for sqlite driver",
		})
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: "must be one of: debug, info, warn, error",
		})
	}

	return errors.Join(errs...)
}
