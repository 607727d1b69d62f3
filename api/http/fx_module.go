package http

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/ecommax/weavekit/v1/logger"
	"github.com/ecommax/weavekit/v1/metrics"
	"github.com/ecommax/weavekit/v1/vectorstore"
)

// FXModule defines the Fx module for the HTTP API package.
// This module integrates the API server into an Fx-based application by
// providing the handler and server factories and registering the server
// lifecycle.
//
// Usage:
//
//	app := fx.New(
//	    http.FXModule,
//	    fx.Provide(http.FromEnv),
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A http.Config instance must be available in the dependency injection container
// - A vectorstore.Store implementation and a ReadinessChecker
// - A logger.Logger and metrics.Metrics instance
var FXModule = fx.Module("http",
	fx.Provide(
		NewHandlerWithDI,
		NewServerWithDI,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// Params defines the dependencies needed to build the API server.
type Params struct {
	fx.In

	Config  *Config
	Store   vectorstore.Store
	Ready   ReadinessChecker `optional:"true"`
	Logger  *logger.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewHandlerWithDI creates the endpoint handler from injected dependencies.
func NewHandlerWithDI(p Params) *Handler {
	return NewHandler(p.Store, p.Ready, p.Config, p.Logger, p.Metrics)
}

// NewServerWithDI creates the API server from injected dependencies.
func NewServerWithDI(p Params, handler *Handler) *Server {
	return NewServer(p.Config, handler, p.Logger, p.Metrics)
}

// RegisterServerLifecycle starts the API server on application start and
// shuts it down gracefully on stop.
//
// Note: this function is automatically invoked by the FXModule and does not
// need to be called directly in application code.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := s.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP API server failed", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Shutdown(ctx)
		},
	})
}
