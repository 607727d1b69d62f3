package metrics

import "github.com/kelseyhightower/envconfig"

// Config holds the settings for the Prometheus metrics server.
type Config struct {
	// Address is the listen address of the /metrics HTTP server.
	Address string `yaml:"address" envconfig:"ADDRESS" default:":9090"`

	// ServiceName is attached as a constant "service" label to every metric.
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME" default:"weavekit"`

	// EnableDefaultCollectors registers the Go, process and build-info
	// collectors in addition to the application metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"ENABLE_DEFAULT_COLLECTORS" default:"true"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Address:                 ":9090",
		ServiceName:             "weavekit",
		EnableDefaultCollectors: true,
	}
}

// FromEnv loads the configuration from METRICS_* environment variables.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process("metrics", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
