package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hpn/ai-text-polisher/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultConfigName = "config"
	defaultConfigType = "yaml"
	defaultConfigDir  = ".ai-text-polisher"

	// EnvPrefix prefixes every environment override, e.g. POLISHER_API_KEY.
	EnvPrefix = "POLISHER"

	// DotEnvFile is loaded from the working directory before the environment is read.
	DotEnvFile = ".env"
)

// Load reads the configuration. An empty configPath searches the default locations.
// Priority order (highest to lowest):
// 1. POLISHER_* environment variables (including those from .env)
// 2. The config file
// 3. Provider presets for an empty api.url / api.model
// 4. Default values
func Load(configPath string) (*Configuration, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &ConfigError{
			Op:  "dotenv",
			Err: fmt.Errorf("failed to load %s: %w", DotEnvFile, err),
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(defaultConfigName)
	v.SetConfigType(defaultConfigType)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/" + defaultConfigDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, &ConfigError{
				Op:  "read",
				Err: fmt.Errorf("failed to read config file: %w", err),
			}
		}
		// No config file: defaults and environment are enough to run.
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &ConfigError{
			Op:  "unmarshal",
			Err: fmt.Errorf("failed to unmarshal config: %w", err),
		}
	}

	cfg.ConfigFile = v.ConfigFileUsed()
	cfg.API.Key = strings.TrimSpace(cfg.API.Key)
	cfg.applyPreset()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// API defaults; url and model come from the provider preset when unset
	v.SetDefault("api.provider", string(domain.ProviderOpenAI))
	v.SetDefault("api.url", "")
	v.SetDefault("api.key", "")
	v.SetDefault("api.model", "")

	v.SetDefault("actions", actionsToSettings(domain.DefaultActions()))

	// Server defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8787)
	v.SetDefault("server.read_timeout_seconds", 30)
	v.SetDefault("server.write_timeout_seconds", 120)
	v.SetDefault("server.shutdown_timeout_seconds", 15)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Notification defaults match the extension's badge timings
	v.SetDefault("notifications.enabled", true)
	v.SetDefault("notifications.clear_after_success_seconds", 3)
	v.SetDefault("notifications.clear_after_error_seconds", 5)

	v.SetDefault("request_timeout_seconds", 60)
}

// DefaultConfigPath is where settings are saved when none were loaded from a file.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(defaultConfigDir, defaultConfigName+"."+defaultConfigType)
	}
	return filepath.Join(home, defaultConfigDir, defaultConfigName+"."+defaultConfigType)
}

// SaveActions rewrites the actions list in the config file at path, leaving
// every other setting in that file untouched. Values that came from the
// environment are never written.
func SaveActions(path string, actions domain.ActionSet) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &ConfigError{
			Op:  "read",
			Err: fmt.Errorf("failed to read %s: %w", path, err),
		}
	}

	v.Set("actions", actionsToSettings(actions))

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return &ConfigError{Op: "write", Err: err}
	}
	if err := v.WriteConfigAs(path); err != nil {
		return &ConfigError{
			Op:  "write",
			Err: fmt.Errorf("failed to write %s: %w", path, err),
		}
	}

	return nil
}

// actionsToSettings converts actions into the generic form Viper serializes.
func actionsToSettings(actions domain.ActionSet) []map[string]any {
	out := make([]map[string]any, len(actions))
	for i, a := range actions {
		out[i] = map[string]any{
			"id":     a.ID,
			"name":   a.Name,
			"prompt": a.Prompt,
		}
	}
	return out
}
