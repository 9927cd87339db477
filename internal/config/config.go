// Package config loads the flat settings blob using Viper.
// Values come from config.yaml, a .env file and POLISHER_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/hpn/ai-text-polisher/internal/adapter"
	"github.com/hpn/ai-text-polisher/internal/domain"
)

// Configuration holds all application configuration values.
type Configuration struct {
	// API selects and authenticates the AI provider.
	API APIConfig `json:"api" mapstructure:"api"`

	// Actions are the prompt templates offered to the user.
	Actions domain.ActionSet `json:"actions" mapstructure:"actions"`

	// Server configuration for the local HTTP surface
	Server ServerConfig `json:"server" mapstructure:"server"`

	// Logging configuration
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Notifications configures desktop notifications and badge clearing.
	Notifications NotificationConfig `json:"notifications" mapstructure:"notifications"`

	// RequestTimeoutSeconds bounds one AI request. Zero means no limit.
	RequestTimeoutSeconds int `json:"request_timeout_seconds" mapstructure:"request_timeout_seconds"`

	// ConfigFile is the file the settings were read from, if any.
	ConfigFile string `json:"-" mapstructure:"-"`
}

// APIConfig holds the provider settings.
type APIConfig struct {
	// URL is the endpoint; for gemini, the models base URL.
	URL string `json:"url" mapstructure:"url"`

	// Key is the provider API key.
	Key string `json:"-" mapstructure:"key"`

	// Model is the model name.
	Model string `json:"model" mapstructure:"model"`

	// Provider selects the adapter (openai, azure, anthropic, gemini, deepseek).
	Provider domain.ProviderID `json:"provider" mapstructure:"provider"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	// Host is the server bind address.
	Host string `json:"host" mapstructure:"host"`

	// Port is the server port number.
	Port int `json:"port" mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeoutSeconds int `json:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeoutSeconds int `json:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`

	// ShutdownTimeout is the maximum duration to wait for active connections to finish.
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" mapstructure:"shutdown_timeout_seconds"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" mapstructure:"level"`

	// Format is the log format (json, text).
	Format string `json:"format" mapstructure:"format"`
}

// NotificationConfig controls status feedback after a run.
type NotificationConfig struct {
	// Enabled turns desktop notifications on.
	Enabled bool `json:"enabled" mapstructure:"enabled"`

	// ClearAfterSuccessSeconds is how long a success badge stays visible.
	ClearAfterSuccessSeconds int `json:"clear_after_success_seconds" mapstructure:"clear_after_success_seconds"`

	// ClearAfterErrorSeconds is how long an error badge stays visible.
	ClearAfterErrorSeconds int `json:"clear_after_error_seconds" mapstructure:"clear_after_error_seconds"`
}

// ClientConfig returns the per-request provider configuration.
func (c *Configuration) ClientConfig() domain.ClientConfig {
	return domain.ClientConfig{
		EndpointURL: c.API.URL,
		APIKey:      c.API.Key,
		ModelName:   c.API.Model,
		ProviderID:  c.API.Provider,
	}
}

// RequestTimeout returns the per-request timeout, or 0 for none.
func (c *Configuration) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// applyPreset fills an empty URL or model from the configured provider's preset.
func (c *Configuration) applyPreset() {
	preset, ok := adapter.Preset(c.API.Provider)
	if !ok {
		return
	}
	if c.API.URL == "" {
		c.API.URL = preset.BaseURL
	}
	if c.API.Model == "" {
		c.API.Model = preset.Model
	}
}

// Validate validates the configuration and returns an error if required fields are missing.
// A missing API key is not a configuration error; requests report it instead.
func (c *Configuration) Validate() error {
	var validationErrors []string

	if c.API.URL == "" {
		validationErrors = append(validationErrors, "api.url is required")
	}
	if c.API.Model == "" {
		validationErrors = append(validationErrors, "api.model is required")
	}

	seen := make(map[string]struct{}, len(c.Actions))
	for i, action := range c.Actions {
		if !action.IsValid() {
			validationErrors = append(validationErrors, fmt.Sprintf("actions[%d] requires id, name and prompt", i))
		}
		if _, dup := seen[action.ID]; dup {
			validationErrors = append(validationErrors, fmt.Sprintf("actions[%d].id '%s' is duplicated", i, action.ID))
		}
		seen[action.ID] = struct{}{}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		validationErrors = append(validationErrors, "server.port must be between 1 and 65535")
	}

	if c.Logging.Level != "" && !isValidLogLevel(c.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level '%s' is invalid, must be one of: debug, info, warn, error",
			c.Logging.Level,
		))
	}

	if c.Logging.Format != "" && c.Logging.Format != "json" && c.Logging.Format != "text" {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format '%s' is invalid, must be one of: json, text",
			c.Logging.Format,
		))
	}

	if c.RequestTimeoutSeconds < 0 {
		validationErrors = append(validationErrors, "request_timeout_seconds cannot be negative")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}

// isValidLogLevel checks if the log level is valid.
func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
