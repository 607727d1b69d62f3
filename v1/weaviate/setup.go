package weaviate

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	wvt "github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate-go-client/v5/weaviate/auth"
	"github.com/weaviate/weaviate/entities/models"

	"github.com/ecommax/weavekit/v1/logger"
	"github.com/ecommax/weavekit/v1/vectorstore"
)

// Client wraps the official Weaviate Go client behind the vectorstore.Store
// interface.
//
// The wrapper owns configuration validation, the readiness handshake during
// construction, header-based forwarding of model provider credentials and the
// translation between vectorstore types and Weaviate's wire types. Callers
// never see the underlying client's types.
type Client struct {
	api *wvt.Client
	cfg *Config
	log *logger.Logger

	mu     sync.Mutex
	closed bool
}

// Client implements vectorstore.Store.
var _ vectorstore.Store = (*Client)(nil)

// ServerMeta describes the remote deployment, as reported by its meta
// endpoint.
type ServerMeta struct {
	Version  string
	Hostname string
	Modules  []string
}

// NewClient validates the configuration, builds the underlying Weaviate
// client and performs a readiness handshake against the deployment.
//
// It fails fast: a missing credential returns a configuration error before
// any network traffic, and an unreachable or not-ready deployment returns a
// connection error. The returned client is safe for concurrent use.
//
// Example:
//
//	cfg, err := weaviate.FromEnv()
//	if err != nil { ... }
//	client, err := weaviate.NewClient(context.Background(), cfg, log)
//	if err != nil { ... }
//	defer client.Close()
func NewClient(ctx context.Context, cfg *Config, log *logger.Logger) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = logger.NewNop()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scheme, host, err := cfg.endpoint()
	if err != nil {
		return nil, err
	}

	headers := map[string]string{}
	if cfg.OpenAIAPIKey != "" {
		headers["X-OpenAI-Api-Key"] = cfg.OpenAIAPIKey
	}
	if cfg.CohereAPIKey != "" {
		headers["X-Cohere-Api-Key"] = cfg.CohereAPIKey
	}

	wvtCfg := wvt.Config{
		Scheme:         scheme,
		Host:           host,
		Headers:        headers,
		StartupTimeout: cfg.StartupTimeout,
	}
	if !cfg.Anonymous {
		wvtCfg.AuthConfig = auth.ApiKey{Value: cfg.APIKey}
	}

	api, err := wvt.NewClient(wvtCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vectorstore.ErrConnection, err)
	}

	c := &Client{
		api: api,
		cfg: cfg,
		log: log,
	}

	if err := c.Ready(ctx); err != nil {
		return nil, err
	}

	log.Info("connected to Weaviate", nil, map[string]interface{}{
		"host":   host,
		"scheme": scheme,
	})

	return c, nil
}

// Ready verifies that the deployment accepts requests.
func (c *Client) Ready(ctx context.Context) error {
	if err := c.ensureOpen(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	ready, err := c.api.Misc().ReadyChecker().Do(ctx)
	if err != nil {
		return fmt.Errorf("%w: readiness check failed: %v", vectorstore.ErrConnection, err)
	}
	if !ready {
		return fmt.Errorf("%w: deployment is not ready", vectorstore.ErrConnection)
	}
	return nil
}

// Meta fetches version and module information from the deployment.
func (c *Client) Meta(ctx context.Context) (*ServerMeta, error) {
	if err := c.ensureOpen(); err != nil {
		return nil, err
	}

	meta, err := c.api.Misc().MetaGetter().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vectorstore.ErrConnection, err)
	}
	return &ServerMeta{
		Version:  meta.Version,
		Hostname: meta.Hostname,
		Modules:  moduleNames(meta),
	}, nil
}

// Close marks the client closed. Subsequent operations return
// vectorstore.ErrClosed. Close is idempotent.
//
// The underlying transport is plain HTTP with no pooled resources of its own,
// so Close releases nothing, it only fences off further use.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.log.Info("Weaviate client closed", nil, nil)
	return nil
}

// ensureOpen guards every operation against use after Close.
func (c *Client) ensureOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("%w: weaviate client", vectorstore.ErrClosed)
	}
	return nil
}

func moduleNames(meta *models.Meta) []string {
	mods, ok := meta.Modules.(map[string]interface{})
	if !ok {
		return nil
	}
	names := make([]string, 0, len(mods))
	for name := range mods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
