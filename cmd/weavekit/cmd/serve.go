package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	httpapi "github.com/ecommax/weavekit/api/http"
	"github.com/ecommax/weavekit/v1/logger"
	"github.com/ecommax/weavekit/v1/metrics"
	"github.com/ecommax/weavekit/v1/weaviate"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the search API server",
	Long: `Starts the HTTP API (health, status, ingestion and the four search
endpoints) together with the Prometheus metrics server. Runs until
interrupted.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	app := fx.New(
		fx.Provide(
			logger.FromEnv,
			metrics.FromEnv,
			weaviate.FromEnv,
			httpapi.FromEnv,
			func(c *weaviate.Client) httpapi.ReadinessChecker { return c },
		),
		logger.FXModule,
		metrics.FXModule,
		weaviate.FXModule,
		httpapi.FXModule,
	)
	if err := app.Err(); err != nil {
		return err
	}

	app.Run()
	return nil
}
