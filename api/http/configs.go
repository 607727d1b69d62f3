package http

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/ecommax/weavekit/v1/vectorstore"
)

// Config holds the HTTP API server settings.
type Config struct {
	// Address the server listens on.
	Address string `yaml:"address" envconfig:"ADDRESS" default:":8000"`

	// AllowOrigins configures CORS. The default is permissive, matching a
	// public demo deployment; lock it down per environment.
	AllowOrigins []string `yaml:"allow_origins" envconfig:"ALLOW_ORIGINS" default:"*"`

	// Collection is the collection the API serves, by default the product
	// catalog.
	Collection string `yaml:"collection" envconfig:"COLLECTION" default:"Catalog"`

	// DefaultLimit caps search results when the request does not set one.
	DefaultLimit int `yaml:"default_limit" envconfig:"DEFAULT_LIMIT" default:"5"`

	// DefaultAlpha is the hybrid search weighting used when the request
	// does not set one. 0 is pure keyword, 1 is pure vector.
	DefaultAlpha float64 `yaml:"default_alpha" envconfig:"DEFAULT_ALPHA" default:"0.7"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Address:      ":8000",
		AllowOrigins: []string{"*"},
		Collection:   "Catalog",
		DefaultLimit: 5,
		DefaultAlpha: 0.7,
	}
}

// FromEnv loads the configuration from HTTP_* environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("http", cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", vectorstore.ErrConfiguration, err)
	}
	return cfg, nil
}
