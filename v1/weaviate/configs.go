package weaviate

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/ecommax/weavekit/v1/vectorstore"
)

const (
	defaultBatchSize  = 100 // default chunk size for batch inserts
	defaultQueryLimit = 5   // default result cap when a query sets none
	defaultPageSize   = 100 // default cursor page size
)

// Config holds connection and behavior settings for the Weaviate client.
//
// It is intentionally minimal, readable, and easy to override from
// environment variables, YAML, or programmatically via helper methods.
//
// Example (programmatic):
//
//	cfg := weaviate.DefaultConfig()
//	cfg.URL = "https://my-cluster.weaviate.cloud"
//	cfg.APIKey = os.Getenv("WEAVIATE_API_KEY")
//
// Example (environment):
//
//	cfg, err := weaviate.FromEnv()
type Config struct {
	// URL of the Weaviate deployment, e.g.
	// "https://my-cluster.weaviate.cloud" or "http://localhost:8080".
	URL string `yaml:"url" envconfig:"WEAVIATE_URL"`

	// APIKey authenticates against the deployment.
	APIKey string `yaml:"api_key" envconfig:"WEAVIATE_API_KEY"`

	// OpenAIAPIKey is forwarded to the store's OpenAI integration
	// (vectorization and generation) via the X-OpenAI-Api-Key header.
	OpenAIAPIKey string `yaml:"openai_api_key" envconfig:"OPENAI_API_KEY"`

	// CohereAPIKey is forwarded to the store's Cohere integration via the
	// X-Cohere-Api-Key header.
	CohereAPIKey string `yaml:"cohere_api_key" envconfig:"COHERE_API_KEY"`

	// Anonymous disables credential validation and authentication,
	// for local deployments with anonymous access enabled.
	Anonymous bool `yaml:"anonymous" envconfig:"WEAVIATE_ANONYMOUS"`

	// BatchSize is the default number of records per batch write.
	BatchSize int `yaml:"batch_size" envconfig:"WEAVIATE_BATCH_SIZE"`

	// StartupTimeout bounds how long the client waits for the deployment
	// to become ready during construction.
	StartupTimeout time.Duration `yaml:"startup_timeout" envconfig:"WEAVIATE_STARTUP_TIMEOUT"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      defaultBatchSize,
		StartupTimeout: 15 * time.Second,
	}
}

// FromEnv loads the configuration from the environment: WEAVIATE_URL,
// WEAVIATE_API_KEY, OPENAI_API_KEY, COHERE_API_KEY and the optional
// WEAVIATE_* tuning knobs.
func FromEnv() (*Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", vectorstore.ErrConfiguration, err)
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.StartupTimeout <= 0 {
		cfg.StartupTimeout = 15 * time.Second
	}
	return cfg, nil
}

// Builder-style helpers (optional, ergonomic)
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

func (c *Config) WithBatchSize(n int) *Config {
	c.BatchSize = n
	return c
}

func (c *Config) WithAnonymous(enabled bool) *Config {
	c.Anonymous = enabled
	return c
}

// Validate checks that every required credential is present before any
// connection attempt is made. The returned error lists all missing variables
// at once, so a broken deployment can be fixed in one pass.
func (c *Config) Validate() error {
	var missing []string
	if c.URL == "" {
		missing = append(missing, "WEAVIATE_URL")
	}
	if !c.Anonymous {
		if c.APIKey == "" {
			missing = append(missing, "WEAVIATE_API_KEY")
		}
		if c.OpenAIAPIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
		if c.CohereAPIKey == "" {
			missing = append(missing, "COHERE_API_KEY")
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required environment variables: %s",
			vectorstore.ErrConfiguration, strings.Join(missing, ", "))
	}
	return nil
}

// endpoint splits Config.URL into the scheme and host expected by the
// underlying client. URLs without a scheme default to https, which is what
// hosted deployments use.
func (c *Config) endpoint() (scheme, host string, err error) {
	raw := c.URL
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", "", fmt.Errorf("%w: invalid WEAVIATE_URL %q", vectorstore.ErrConfiguration, c.URL)
	}
	return u.Scheme, u.Host, nil
}
