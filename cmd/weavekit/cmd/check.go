package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecommax/weavekit/v1/catalog"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify connectivity and print deployment info",
	Long: `Connects to the deployment, runs a readiness check and prints server
version, enabled modules and the state of the catalog collection.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, client, err := connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	meta, err := client.Meta(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("connected: version=%s hostname=%s\n", meta.Version, meta.Hostname)
	if len(meta.Modules) > 0 {
		fmt.Printf("modules: %s\n", strings.Join(meta.Modules, ", "))
	}

	exists, err := client.CollectionExists(ctx, catalog.CollectionName)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Printf("collection %q does not exist (run `weavekit seed`)\n", catalog.CollectionName)
		return nil
	}

	count, err := client.Count(ctx, catalog.CollectionName)
	if err != nil {
		return err
	}
	fmt.Printf("collection %q: %d products\n", catalog.CollectionName, count)
	return nil
}
