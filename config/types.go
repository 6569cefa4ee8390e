package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Nomics  NomicsConfig  `mapstructure:"nomics"`
	Output  OutputConfig  `mapstructure:"output"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// NomicsConfig holds Nomics API connection details
type NomicsConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	PaidPlans    bool          `mapstructure:"paid_plans"`
	FailSilently bool          `mapstructure:"fail_silently"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// OutputConfig controls how market data is requested and rendered
type OutputConfig struct {
	Convert string `mapstructure:"convert"`
	PerPage int    `mapstructure:"per_page"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
