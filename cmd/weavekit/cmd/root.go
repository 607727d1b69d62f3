package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecommax/weavekit/v1/logger"
	"github.com/ecommax/weavekit/v1/weaviate"
)

var rootCmd = &cobra.Command{
	Use:   "weavekit",
	Short: "Product catalog search over a hosted Weaviate deployment",
	Long: `weavekit manages an e-commerce product catalog in Weaviate and serves
semantic, keyword, hybrid and generative search over it.

Configuration comes from the environment: WEAVIATE_URL, WEAVIATE_API_KEY,
OPENAI_API_KEY and COHERE_API_KEY are required for hosted deployments.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(checkCmd)
}

// connect builds the logger and store client for one-shot commands.
func connect(ctx context.Context) (*logger.Logger, *weaviate.Client, error) {
	logCfg, err := logger.FromEnv()
	if err != nil {
		return nil, nil, fmt.Errorf("load logger config: %w", err)
	}
	log := logger.NewLoggerClient(logCfg)

	storeCfg, err := weaviate.FromEnv()
	if err != nil {
		return log, nil, err
	}
	client, err := weaviate.NewClient(ctx, storeCfg, log)
	if err != nil {
		return log, nil, err
	}
	return log, client, nil
}
