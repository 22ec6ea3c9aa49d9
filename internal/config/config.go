package config

// Store modes.
const (
	// StoreModeShared keeps one task store for the lifetime of the process.
	StoreModeShared = "shared"

	// StoreModePerRequest resets the task store to its seed data before
	// every request.
	StoreModePerRequest = "per_request"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Store   StoreConfig   `mapstructure:"store"   validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// RoutePrefix is prepended to every task route, e.g. "/api".
	RoutePrefix            string `mapstructure:"route_prefix"             validate:"omitempty,startswith=/"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// StoreConfig contains the task store settings.
type StoreConfig struct {
	Mode string `mapstructure:"mode" validate:"required,oneof=shared per_request"`
	Seed bool   `mapstructure:"seed"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"    validate:"required,startswith=/"`
}
