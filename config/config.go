package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. NOMICS_NOMICS_API_KEY or the
// NOMICS_API_KEY shorthand.
const EnvPrefix = "NOMICS"

// Load loads the configuration from file and environment. A missing file is only
// an error when configPath names one explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// NOMICS_API_KEY reads better than NOMICS_NOMICS_API_KEY
	if err := v.BindEnv("nomics.api_key", EnvPrefix+"_NOMICS_API_KEY", EnvPrefix+"_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".nomics"))
		}

		// Check /etc
		v.AddConfigPath("/etc/nomics/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Nomics defaults
	v.SetDefault("nomics.api_key", "")
	v.SetDefault("nomics.base_url", "https://api.nomics.com/v1")
	v.SetDefault("nomics.paid_plans", false)
	v.SetDefault("nomics.fail_silently", false)
	v.SetDefault("nomics.timeout", "30s")

	// Output defaults
	v.SetDefault("output.convert", "USD")
	v.SetDefault("output.per_page", 25)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Nomics.APIKey == "" || cfg.Nomics.APIKey == "your-api-key-here" {
		return fmt.Errorf("nomics.api_key must be set to a valid API key")
	}

	if cfg.Nomics.BaseURL != "" {
		u, err := url.Parse(cfg.Nomics.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid nomics.base_url: %s", cfg.Nomics.BaseURL)
		}
	}

	if cfg.Nomics.Timeout < 0 {
		return fmt.Errorf("nomics.timeout must not be negative")
	}

	if cfg.Output.PerPage < 1 || cfg.Output.PerPage > 100 {
		return fmt.Errorf("output.per_page must be between 1 and 100, got %d", cfg.Output.PerPage)
	}

	for name, expr := range cfg.Filter.Presets {
		if strings.TrimSpace(expr) == "" {
			return fmt.Errorf("filter preset %q is empty", name)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
