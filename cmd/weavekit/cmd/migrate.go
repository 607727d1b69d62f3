package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecommax/weavekit/v1/migrate"
)

var migrateCfg migrate.Config

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy a collection into a new collection",
	Long: `Copies one collection into another on the same deployment: the schema is
cloned first, then every object is streamed across page by page with its
ID preserved. Afterwards source and target counts are compared.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateCfg.Source, "source", "", "collection to copy from (required)")
	migrateCmd.Flags().StringVar(&migrateCfg.Target, "target", "", "collection to copy into (required)")
	migrateCmd.Flags().BoolVar(&migrateCfg.Overwrite, "overwrite", false, "replace the target collection if it exists")
	migrateCmd.Flags().IntVar(&migrateCfg.PageSize, "page-size", 100, "objects read per page from the source")
	migrateCmd.Flags().IntVar(&migrateCfg.BatchSize, "batch-size", 100, "records written per batch into the target")
	_ = migrateCmd.MarkFlagRequired("source")
	_ = migrateCmd.MarkFlagRequired("target")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	log, client, err := connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	runner, err := migrate.NewRunner(client, log, migrateCfg)
	if err != nil {
		return err
	}

	summary, err := runner.Run(ctx)
	if summary != nil {
		fmt.Printf("migration %s -> %s: state=%s copied=%d/%d failed=%d verified=%t duration=%s\n",
			summary.Source, summary.Target, summary.State,
			summary.Copied, summary.Expected, summary.Failed,
			summary.Verified, summary.Duration.Round(time.Millisecond))
	}
	return err
}
