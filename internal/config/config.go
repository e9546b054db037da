package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"todo-api/internal/repository/sqlstore"
)

// Config holds all configuration options for the todo service and its client
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Server     ServerConfig     `yaml:"server"`
	Client     ClientConfig     `yaml:"client"`
	Validation ValidationConfig `yaml:"validation"`
	Log        LogConfig        `yaml:"log"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver       string        `yaml:"driver"`
	DSN          string        `yaml:"dsn"`
	QueryTimeout time.Duration `yaml:"query_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxOpenConns int           `yaml:"max_open_conns"`
}

// ServerConfig holds HTTP listener configuration
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// ClientConfig holds configuration for the HTTP client adapter
type ClientConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskNameMaxLength int `yaml:"task_name_max_length"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Supported database drivers
const (
	DriverMySQL  = sqlstore.DriverMySQL
	DriverSQLite = sqlstore.DriverSQLite
)

// TaskNameColumnWidth is the width of items.name; longer names cannot be stored.
const TaskNameColumnWidth = 45

// legacyDSNEnv is the connection string variable read by earlier deployments.
const legacyDSNEnv = "ToDoDB"

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:       DriverSQLite,
			DSN:          "todo.db",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
			MaxOpenConns: 10,
		},
		Server: ServerConfig{
			Addr:            ":5095",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Client: ClientConfig{
			BaseURL: "http://localhost:5095",
			Timeout: 10 * time.Second,
		},
		Validation: ValidationConfig{
			TaskNameMaxLength: TaskNameColumnWidth,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromFile overlays values from a YAML file. Keys absent from the file keep their current value.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &ConfigError{Field: "file", Message: fmt.Sprintf("invalid YAML in %s: %v", path, err)}
	}
	return nil
}

// LoadFromEnvironment loads configuration from environment variables. A value
// that cannot be parsed is an error, never silently ignored.
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	driver := os.Getenv("TODO_DB_DRIVER")
	if driver != "" {
		c.Database.Driver = strings.ToLower(driver)
	}
	if dsn := os.Getenv("TODO_DB_DSN"); dsn != "" {
		c.Database.DSN = dsn
	} else if dsn := os.Getenv(legacyDSNEnv); dsn != "" {
		c.Database.DSN = dsn
		// ToDoDB has only ever held MySQL connection strings.
		if driver == "" {
			c.Database.Driver = DriverMySQL
		}
	}
	if err := envDuration("TODO_DB_QUERY_TIMEOUT", "database.query_timeout", &c.Database.QueryTimeout); err != nil {
		return err
	}
	if err := envDuration("TODO_DB_WRITE_TIMEOUT", "database.write_timeout", &c.Database.WriteTimeout); err != nil {
		return err
	}
	if err := envInt("TODO_DB_MAX_OPEN_CONNS", "database.max_open_conns", &c.Database.MaxOpenConns); err != nil {
		return err
	}

	// Server configuration
	if addr := os.Getenv("TODO_HTTP_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if err := envDuration("TODO_HTTP_READ_TIMEOUT", "server.read_timeout", &c.Server.ReadTimeout); err != nil {
		return err
	}
	if err := envDuration("TODO_HTTP_WRITE_TIMEOUT", "server.write_timeout", &c.Server.WriteTimeout); err != nil {
		return err
	}
	if err := envDuration("TODO_HTTP_SHUTDOWN_TIMEOUT", "server.shutdown_timeout", &c.Server.ShutdownTimeout); err != nil {
		return err
	}

	// Client configuration
	if baseURL := os.Getenv("TODO_API_URL"); baseURL != "" {
		c.Client.BaseURL = baseURL
	}
	if err := envDuration("TODO_CLIENT_TIMEOUT", "client.timeout", &c.Client.Timeout); err != nil {
		return err
	}

	// Validation configuration
	if err := envInt("TODO_VALIDATION_TASK_NAME_MAX", "validation.task_name_max_length", &c.Validation.TaskNameMaxLength); err != nil {
		return err
	}

	// Log configuration
	if level := os.Getenv("TODO_LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}
	if format := os.Getenv("TODO_LOG_FORMAT"); format != "" {
		c.Log.Format = strings.ToLower(format)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Database configuration
	switch c.Database.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return &ConfigError{Field: "database.driver", Message: fmt.Sprintf("unsupported driver %q (want mysql or sqlite)", c.Database.Driver)}
	}
	if c.Database.DSN == "" {
		return &ConfigError{Field: "database.dsn", Message: "connection string cannot be empty"}
	}
	if c.Database.Driver == DriverSQLite && sqlstore.IsMySQLConnectionString(c.Database.DSN) {
		return &ConfigError{Field: "database.dsn", Message: "a MySQL connection string needs driver mysql, not sqlite"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Database.MaxOpenConns < 1 {
		return &ConfigError{Field: "database.max_open_conns", Message: "max open connections must be at least 1"}
	}

	// Server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	// Client configuration
	if !strings.HasPrefix(c.Client.BaseURL, "http://") && !strings.HasPrefix(c.Client.BaseURL, "https://") {
		return &ConfigError{Field: "client.base_url", Message: "base URL must start with http:// or https://"}
	}
	if c.Client.Timeout <= 0 {
		return &ConfigError{Field: "client.timeout", Message: "client timeout must be positive"}
	}

	// Validation configuration
	if c.Validation.TaskNameMaxLength < 1 || c.Validation.TaskNameMaxLength > TaskNameColumnWidth {
		return &ConfigError{Field: "validation.task_name_max_length", Message: fmt.Sprintf("task name maximum length must be between 1 and %d", TaskNameColumnWidth)}
	}

	// Log configuration
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return &ConfigError{Field: "log.format", Message: fmt.Sprintf("unknown format %q", c.Log.Format)}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
