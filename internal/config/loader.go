package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ConfigPathEnv names the optional YAML config file.
const ConfigPathEnv = "TODO_CONFIG"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
	path   string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
		path:   os.Getenv(ConfigPathEnv),
	}
}

// WithFile sets the YAML file to read. An empty path keeps the TODO_CONFIG value.
func (l *Loader) WithFile(path string) *Loader {
	if path != "" {
		l.path = path
	}
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML file, if one is configured
// 3. Override with environment variables
func (l *Loader) Load() (*Config, error) {
	if l.path != "" {
		if err := l.config.LoadFromFile(l.path); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides. Connection strings are
// deliberately absent: they only come from the file or the environment.
type ConfigOverrides struct {
	LogLevel  *string
	LogFormat *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.LogLevel != nil {
		config.Log.Level = *overrides.LogLevel
	}
	if overrides.LogFormat != nil {
		config.Log.Format = *overrides.LogFormat
	}
}

// envDuration overwrites dst with the duration in the named variable, if set
func envDuration(name, field string, dst *time.Duration) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return &ConfigError{Field: field, Message: fmt.Sprintf("invalid duration %q in %s", raw, name)}
	}
	*dst = d
	return nil
}

// envInt overwrites dst with the integer in the named variable, if set
func envInt(name, field string, dst *int) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	i, err := strconv.Atoi(raw)
	if err != nil {
		return &ConfigError{Field: field, Message: fmt.Sprintf("invalid integer %q in %s", raw, name)}
	}
	*dst = i
	return nil
}
