package logger

import "github.com/kelseyhightower/envconfig"

// Log levels accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config holds the logger settings.
type Config struct {
	// Level selects the minimum level that is emitted.
	Level string `yaml:"level" envconfig:"LEVEL" default:"info"`

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME" default:"weavekit"`

	// File, when set, additionally writes log entries to the given path
	// with size-based rotation.
	File string `yaml:"file" envconfig:"FILE"`

	// MaxSizeMB is the rotation threshold for File in megabytes.
	MaxSizeMB int `yaml:"max_size_mb" envconfig:"MAX_SIZE_MB" default:"50"`

	// MaxBackups is the number of rotated files kept around.
	MaxBackups int `yaml:"max_backups" envconfig:"MAX_BACKUPS" default:"3"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Level:       Info,
		ServiceName: "weavekit",
		MaxSizeMB:   50,
		MaxBackups:  3,
	}
}

// FromEnv loads the configuration from LOG_* environment variables,
// falling back to the struct defaults for unset variables.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process("log", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
