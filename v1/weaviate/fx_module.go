package weaviate

import (
	"context"

	"go.uber.org/fx"

	"github.com/ecommax/weavekit/v1/logger"
	"github.com/ecommax/weavekit/v1/vectorstore"
)

// FXModule defines the Fx module for the weaviate package.
// This module integrates the Weaviate client into an Fx-based application by
// providing the client factory, binding it to the vectorstore.Store
// interface, and registering lifecycle hooks.
//
// Usage:
//
//	app := fx.New(
//	    weaviate.FXModule,
//	    fx.Provide(weaviate.FromEnv),
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A weaviate.Config instance must be available in the dependency injection container
// - A logger.Logger instance for connection logs
var FXModule = fx.Module("weaviate",
	fx.Provide(
		NewClientWithDI,
		AsStore,
	),
	fx.Invoke(RegisterWeaviateLifecycle),
)

// Params defines the dependencies needed to create a Weaviate client.
// This struct uses Fx's dependency injection to receive the configuration
// and logger.
type Params struct {
	fx.In

	Config *Config
	Logger *logger.Logger
}

// NewClientWithDI creates the Weaviate client from injected dependencies.
// Construction performs the readiness handshake, so a misconfigured or
// unreachable deployment fails the application at startup rather than on
// first use.
func NewClientWithDI(p Params) (*Client, error) {
	return NewClient(context.Background(), p.Config, p.Logger)
}

// AsStore exposes the client under the vectorstore.Store interface so
// downstream components depend on the abstraction, not the backend.
func AsStore(c *Client) vectorstore.Store {
	return c
}

// RegisterWeaviateLifecycle wires the client into the application lifecycle:
// a readiness probe on start and an idempotent close on stop.
//
// Note: this function is automatically invoked by the FXModule and does not
// need to be called directly in application code.
func RegisterWeaviateLifecycle(lc fx.Lifecycle, c *Client, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return c.Ready(ctx)
		},
		OnStop: func(ctx context.Context) error {
			log.Info("closing Weaviate client", nil, nil)
			return c.Close()
		},
	})
}
